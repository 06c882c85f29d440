package render

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
)

// PNG rasterizes frames with one CellSize×CellSize square per cell. Layers
// are stacked vertically with a one-cell gap.
type PNG struct {
	w        io.Writer
	cellSize int
}

// NewPNG returns a PNG renderer that encodes to w.
func NewPNG(w io.Writer, cellSize int) (*PNG, error) {
	if cellSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadCellSize, cellSize)
	}
	return &PNG{w: w, cellSize: cellSize}, nil
}

// Render encodes f as a PNG image.
func (p *PNG) Render(f Frame) error {
	dc, err := p.draw(f)
	if err != nil {
		return err
	}
	return dc.EncodePNG(p.w)
}

// Image returns f rasterized.
func (p *PNG) Image(f Frame) (image.Image, error) {
	dc, err := p.draw(f)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func (p *PNG) draw(f Frame) (*gg.Context, error) {
	if f.Grid == nil {
		return nil, ErrNilGrid
	}
	g, cs := f.Grid, float64(p.cellSize)
	rows := g.Height()*g.Depth() + g.Depth() - 1
	dc := gg.NewContext(g.Width()*p.cellSize, rows*p.cellSize)
	dc.SetColor(Palette[KindFree])
	dc.Clear()

	top := 0
	for z := 0; z < g.Depth(); z++ {
		for y, cells := range f.Cells(z) {
			for x, k := range cells {
				dc.SetColor(Palette[k])
				dc.DrawRectangle(float64(x)*cs, float64(top+y)*cs, cs, cs)
				dc.Fill()
			}
		}
		top += g.Height() + 1
	}
	return dc, nil
}
