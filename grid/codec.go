package grid

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrDecode wraps failures to parse a grid document.
var ErrDecode = errors.New("grid: cannot decode literal")

// Literal is the on-disk form of a grid. Exactly one of Cells (2D) or
// Layers (3D) is set. A bare top-level sequence of rows is also accepted
// by Decode as shorthand for Cells.
type Literal struct {
	Cells  [][]int   `yaml:"cells,omitempty"`
	Layers [][][]int `yaml:"layers,omitempty"`
}

// Decode reads a YAML (or JSON) grid literal from r and validates it.
//
//	cells:
//	  - [-1, 0, 0]
//	  - [ 1, 1, 0]
//	  - [ 2, 0, 0]
func Decode(r io.Reader) (*Grid, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyGrid
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	var lit Literal
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&lit.Cells); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	case yaml.MappingNode:
		if err := root.Decode(&lit); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%w: unexpected document kind at line %d", ErrDecode, root.Line)
	}

	if len(lit.Layers) > 0 {
		return FromLayers(lit.Layers)
	}
	return FromLiteral(lit.Cells)
}

// Encode writes g as a YAML literal with one flow-style row per line.
// 2D grids use the cells key, 3D grids the layers key.
func (g *Grid) Encode(w io.Writer) error {
	layers := g.Layers()
	var body *yaml.Node
	key := "cells"
	if g.Is3D() {
		key = "layers"
		body = &yaml.Node{Kind: yaml.SequenceNode}
		for _, layer := range layers {
			body.Content = append(body.Content, rowsNode(layer))
		}
	} else {
		body = rowsNode(layers[0])
	}
	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: key},
			body,
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("grid: encode: %w", err)
	}
	return enc.Close()
}

// rowsNode renders a 2D literal as a block sequence of flow sequences.
func rowsNode(rows [][]int) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range rows {
		r := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range row {
			r.Content = append(r.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!int",
				Value: strconv.Itoa(v),
			})
		}
		seq.Content = append(seq.Content, r)
	}
	return seq
}
