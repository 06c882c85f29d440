package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/grid"
)

// Terminal draws frames on a tcell screen, one character per cell, with the
// status line below the last layer.
type Terminal struct {
	screen tcell.Screen
	delay  time.Duration
	styles [kindCount]tcell.Style
	err    error
}

// NewTerminal wraps an initialized screen. Each Render sleeps for delay
// afterwards so successive frames can be followed; 0 disables the pause.
func NewTerminal(screen tcell.Screen, delay time.Duration) *Terminal {
	t := &Terminal{screen: screen, delay: delay}
	for k := range t.styles {
		c := Palette[k]
		t.styles[k] = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	t.styles[KindStart] = t.styles[KindStart].Bold(true)
	t.styles[KindTarget] = t.styles[KindTarget].Bold(true)
	return t
}

// OpenTerminal initializes the process terminal.
func OpenTerminal(delay time.Duration) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err = screen.Init(); err != nil {
		return nil, err
	}
	return NewTerminal(screen, delay), nil
}

// Render clears the screen and draws f.
func (t *Terminal) Render(f Frame) error {
	if f.Grid == nil {
		return ErrNilGrid
	}
	t.screen.Clear()
	row := 0
	for z := 0; z < f.Grid.Depth(); z++ {
		if z > 0 {
			row++
		}
		for y, cells := range f.Cells(z) {
			for x, k := range cells {
				v := f.Grid.Value(grid.Pt3(x, y, z))
				t.screen.SetContent(x, row, Glyph(k, v), nil, t.styles[k])
			}
			row++
		}
	}
	for i, r := range f.Status() {
		t.screen.SetContent(i, row, r, nil, tcell.StyleDefault)
	}
	t.screen.Show()

	if t.delay > 0 {
		time.Sleep(t.delay)
	}
	return nil
}

// Hook returns an astar.WithOnExpand callback that renders every snapshot.
// The first render error is kept and reported by Err.
func (t *Terminal) Hook(g *grid.Grid, start, target grid.Pos) func(astar.Snapshot) {
	return func(s astar.Snapshot) {
		if err := t.Render(FrameFromSnapshot(g, s, start, target)); err != nil && t.err == nil {
			t.err = err
		}
	}
}

// Err returns the first error seen by Hook.
func (t *Terminal) Err() error { return t.err }

// Close restores the terminal.
func (t *Terminal) Close() { t.screen.Fini() }
