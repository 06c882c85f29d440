package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/grid"
)

// Sentinel errors for renderers.
var (
	// ErrNilGrid indicates a Frame without a grid.
	ErrNilGrid = errors.New("render: frame has no grid")
	// ErrBadCellSize indicates a PNG cell size below 1 pixel.
	ErrBadCellSize = errors.New("render: cell size must be positive")
	// ErrUnknownMode indicates an unrecognized render mode name.
	ErrUnknownMode = errors.New("render: unknown mode")
)

// Renderer draws one Frame.
type Renderer interface {
	Render(f Frame) error
}

// Mode names an output target.
type Mode string

// Output modes accepted by ParseMode.
const (
	ModeText     Mode = "text"
	ModeTerminal Mode = "terminal"
	ModePNG      Mode = "png"
	ModeNone     Mode = "none"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeText, ModeTerminal, ModePNG, ModeNone:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Kind classifies a cell for drawing.
type Kind int

// Cell kinds; each has a Palette entry and a Glyph.
const (
	KindFree Kind = iota
	KindWall
	KindCost
	KindOpen
	KindClosed
	KindCurrent
	KindPath
	KindStart
	KindTarget
	kindCount
)

// Palette maps every Kind to its color. Path is purple, start green and
// target red; walls are bright black.
var Palette = [kindCount]color.RGBA{
	KindFree:    {R: 0x1c, G: 0x1c, B: 0x1c, A: 0xff},
	KindWall:    {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	KindCost:    {R: 0xaf, G: 0x87, B: 0x5f, A: 0xff},
	KindOpen:    {R: 0x5f, G: 0x87, B: 0xff, A: 0xff},
	KindClosed:  {R: 0x44, G: 0x44, B: 0x66, A: 0xff},
	KindCurrent: {R: 0xff, G: 0xd7, B: 0x00, A: 0xff},
	KindPath:    {R: 0xaf, G: 0x5f, B: 0xff, A: 0xff},
	KindStart:   {R: 0x00, G: 0xd7, B: 0x5f, A: 0xff},
	KindTarget:  {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
}

// hex returns c as #rrggbb.
func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Glyph returns the character drawn for a cell of kind k holding marker v.
// Cost cells show their marker digit, or '+' above 9.
func Glyph(k Kind, v int) rune {
	switch k {
	case KindWall:
		return '#'
	case KindCost:
		if v <= 9 {
			return rune('0' + v)
		}
		return '+'
	case KindOpen:
		return 'o'
	case KindClosed:
		return 'x'
	case KindCurrent:
		return '@'
	case KindPath:
		return '*'
	case KindStart:
		return 'S'
	case KindTarget:
		return 'T'
	default:
		return '.'
	}
}

// Frame is one picture of a grid and, optionally, a search over it.
type Frame struct {
	Grid          *grid.Grid
	Start, Target grid.Pos
	Path          []grid.Pos
	Open, Closed  []grid.Pos
	Current       *grid.Pos
	State         astar.State
	Iterations    int
	Cost          float64
}

// nowhere is an endpoint that matches no cell.
var nowhere = grid.Pt(-1, -1)

// FrameFromGrid shows a grid alone, taking start and target from its markers.
// A missing marker is simply not highlighted.
func FrameFromGrid(g *grid.Grid) Frame {
	f := Frame{Grid: g, Start: nowhere, Target: nowhere}
	if g == nil {
		return f
	}
	if p, ok := g.Start(); ok {
		f.Start = p
	}
	if p, ok := g.Target(); ok {
		f.Target = p
	}
	return f
}

// FrameFromResult shows a finished search: the path and every expanded cell.
func FrameFromResult(g *grid.Grid, res *astar.Result) Frame {
	return Frame{
		Grid:       g,
		Start:      res.Start,
		Target:     res.Target,
		Path:       res.Positions(),
		Closed:     res.Expanded(),
		State:      res.State,
		Iterations: res.Iterations,
		Cost:       res.Cost(),
	}
}

// FrameFromSnapshot shows a search in progress.
func FrameFromSnapshot(g *grid.Grid, s astar.Snapshot, start, target grid.Pos) Frame {
	cur := s.Current.Pos
	return Frame{
		Grid:       g,
		Start:      start,
		Target:     target,
		Open:       s.Open,
		Closed:     s.Closed,
		Current:    &cur,
		State:      s.State,
		Iterations: s.Iteration,
		Cost:       s.Current.G,
	}
}

// Cells classifies layer z as [y][x] kinds. Precedence, highest first:
// start, target, path, current, closed, open, then the terrain itself.
func (f Frame) Cells(z int) [][]Kind {
	g := f.Grid
	marks := make(map[grid.Pos]Kind, len(f.Path)+len(f.Open)+len(f.Closed))
	for _, p := range f.Open {
		marks[p] = KindOpen
	}
	for _, p := range f.Closed {
		marks[p] = KindClosed
	}
	if f.Current != nil {
		marks[*f.Current] = KindCurrent
	}
	for _, p := range f.Path {
		marks[p] = KindPath
	}

	out := make([][]Kind, g.Height())
	for y := range out {
		out[y] = make([]Kind, g.Width())
		for x := range out[y] {
			p := grid.Pt3(x, y, z)
			k, ok := marks[p]
			switch {
			case p == f.Start:
				k = KindStart
			case p == f.Target:
				k = KindTarget
			case ok:
			case !g.Walkable(p):
				k = KindWall
			case g.CoreCost(p) > 0:
				k = KindCost
			default:
				k = KindFree
			}
			out[y][x] = k
		}
	}
	return out
}

// Status is the one-line summary printed under a frame.
func (f Frame) Status() string {
	if f.State == astar.Found {
		return fmt.Sprintf("%s iterations=%d cost=%g", f.State, f.Iterations, f.Cost)
	}
	return fmt.Sprintf("%s iterations=%d", f.State, f.Iterations)
}
