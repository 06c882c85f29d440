package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/grid"
)

// Text writes frames as rows of glyphs. Colors follow Palette when w is a
// color terminal; otherwise lipgloss degrades to plain text.
type Text struct {
	w      io.Writer
	styles [kindCount]lipgloss.Style
}

// NewText returns a Text renderer bound to w.
func NewText(w io.Writer) *Text {
	r := lipgloss.NewRenderer(w)
	t := &Text{w: w}
	for k := range t.styles {
		t.styles[k] = r.NewStyle().Foreground(lipgloss.Color(hex(Palette[k])))
	}
	t.styles[KindStart] = t.styles[KindStart].Bold(true)
	t.styles[KindTarget] = t.styles[KindTarget].Bold(true)
	return t
}

// Render writes every layer of f, a blank line between layers, followed by
// the status line when f carries a search.
func (t *Text) Render(f Frame) error {
	if f.Grid == nil {
		return ErrNilGrid
	}
	var b strings.Builder
	for z := 0; z < f.Grid.Depth(); z++ {
		if z > 0 {
			b.WriteByte('\n')
		}
		for y, row := range f.Cells(z) {
			for x, k := range row {
				v := f.Grid.Value(grid.Pt3(x, y, z))
				b.WriteString(t.styles[k].Render(string(Glyph(k, v))))
			}
			b.WriteByte('\n')
		}
	}
	if f.State != astar.Running || f.Iterations > 0 {
		b.WriteString(f.Status())
		b.WriteByte('\n')
	}
	_, err := fmt.Fprint(t.w, b.String())
	return err
}
