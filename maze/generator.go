package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/pathgrid/grid"
)

// Generate carves a maze of cfg.Width×cfg.Height (rounded down to odd).
//
// Steps:
//  1. Validate dimensions and braiding, resolve the random source.
//  2. Fill with walls and carve from room (0,0) with an explicit DFS stack.
//  3. Apply braiding.
//  4. Copy the layout into a grid.Grid.
func Generate(cfg Config) (*Result, error) {
	// 1) Validate.
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, cfg.Width, cfg.Height)
	}
	if cfg.Braiding < 0 || cfg.Braiding > 1 {
		return nil, fmt.Errorf("%w: %v", ErrBadBraiding, cfg.Braiding)
	}
	w, h := roundOdd(cfg.Width), roundOdd(cfg.Height)

	seed := cfg.Seed
	rng := cfg.Rand
	switch {
	case rng != nil:
		seed = 0
	case seed == 0:
		seed = time.Now().UnixNano()
		fallthrough
	default:
		rng = rand.New(rand.NewSource(seed))
	}

	// 2) Carve.
	l := newLayout(w, h)
	l.carve(grid.Pt(0, 0), rng)

	// 3) Braid.
	if cfg.Braiding > 0 {
		l.braid(cfg.Braiding, rng)
	}

	// 4) Materialize.
	g, err := grid.New(w, h, 1)
	if err != nil {
		return nil, err
	}
	for i, wall := range l.walls {
		if wall {
			if err = g.Set(g.Coordinate(i), grid.Blocked); err != nil {
				return nil, err
			}
		}
	}

	return &Result{
		Grid:   g,
		Start:  grid.Pt(0, 0),
		Target: grid.Pt(w-1, h-1),
		Seed:   seed,
	}, nil
}

// Marked returns a copy of the maze grid with the start and target markers
// placed. For a single-room maze Start equals Target and the cell carries
// only the target marker; use astar.New with explicit endpoints in that case.
func (r *Result) Marked() (*grid.Grid, error) {
	g := r.Grid.Clone()
	if r.Start != r.Target {
		if err := g.Set(r.Start, grid.Start); err != nil {
			return nil, fmt.Errorf("maze: mark start: %w", err)
		}
	}
	if err := g.Set(r.Target, grid.Target); err != nil {
		return nil, fmt.Errorf("maze: mark target: %w", err)
	}
	return g, nil
}

// Rooms returns the number of even/even cells.
func (r *Result) Rooms() int {
	return ((r.Grid.Width() + 1) / 2) * ((r.Grid.Height() + 1) / 2)
}

// roundOdd rounds n ≥ 1 down to the nearest odd number.
func roundOdd(n int) int {
	if n%2 == 0 {
		return n - 1
	}
	return n
}

// layout is the mutable wall map used while carving, row-major.
type layout struct {
	w, h  int
	walls []bool
}

func newLayout(w, h int) *layout {
	l := &layout{w: w, h: h, walls: make([]bool, w*h)}
	for i := range l.walls {
		l.walls[i] = true
	}
	return l
}

func (l *layout) in(p grid.Pos) bool {
	return p.X >= 0 && p.X < l.w && p.Y >= 0 && p.Y < l.h
}

func (l *layout) wall(p grid.Pos) bool {
	return !l.in(p) || l.walls[p.Y*l.w+p.X]
}

func (l *layout) open(p grid.Pos) { l.walls[p.Y*l.w+p.X] = false }

// carve runs the depth-first walk from root. Each frame tries its shuffled
// directions in order; an unvisited room two cells away gets its shared wall
// opened and becomes the new top of the stack. A room stays a wall until it
// is visited, so wall(room) doubles as the visited flag.
func (l *layout) carve(root grid.Pos, rng *rand.Rand) {
	l.open(root)
	stack := []frame{newFrame(root, rng)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		between := top.cell.Add(d)
		room := between.Add(d)
		if !l.in(room) || !l.wall(room) {
			continue
		}
		l.open(between)
		l.open(room)
		stack = append(stack, newFrame(room, rng))
	}
}

func newFrame(cell grid.Pos, rng *rand.Rand) frame {
	f := frame{cell: cell, dirs: steps}
	rng.Shuffle(len(f.dirs), func(i, j int) { f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i] })
	return f
}

// braid visits every room in row-major order. A dead end (exactly one open
// neighbor) is, with the given probability, joined to a random adjacent room
// it is still walled off from. Openings that would leave a pillar with no
// wall neighbor are skipped.
func (l *layout) braid(probability float64, rng *rand.Rand) {
	for y := 0; y < l.h; y += 2 {
		for x := 0; x < l.w; x += 2 {
			room := grid.Pt(x, y)
			exits := 0
			for _, d := range steps {
				if !l.wall(room.Add(d)) {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]grid.Pos, 0, 3)
			for _, d := range steps {
				between := room.Add(d)
				if l.in(between.Add(d)) && l.wall(between) && !l.isolatesPillar(between) {
					candidates = append(candidates, between)
				}
			}
			if len(candidates) > 0 {
				l.open(candidates[rng.Intn(len(candidates))])
			}
		}
	}
}

// isolatesPillar reports whether clearing p would leave an adjacent wall cell
// with no wall neighbor of its own. Cells outside the layout do not count.
// Rooms and walls alternate, so 2×2 open blocks cannot form and this is the
// only shape braiding has to avoid.
func (l *layout) isolatesPillar(p grid.Pos) bool {
	for _, d := range steps {
		q := p.Add(d)
		if !l.in(q) || !l.wall(q) {
			continue
		}
		walls := 0
		for _, d2 := range steps {
			if r := q.Add(d2); r != p && l.in(r) && l.wall(r) {
				walls++
			}
		}
		if walls == 0 {
			return true
		}
	}
	return false
}
