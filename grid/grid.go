package grid

import "fmt"

// New returns an all-free w×h×d grid. Use depth 1 for 2D grids.
// Returns ErrBadDimensions if any dimension is not positive.
// Complexity: O(W×H×D) time and memory.
func New(w, h, d int) (*Grid, error) {
	if w <= 0 || h <= 0 || d <= 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrBadDimensions, w, h, d)
	}
	return &Grid{
		width:  w,
		height: h,
		depth:  d,
		cells:  make([]int, w*h*d),
	}, nil
}

// FromLiteral builds a 2D grid from rows of markers; rows[y][x] is the cell at (x, y).
// The input is copied. Returns ErrEmptyGrid, ErrNonRectangular, ErrInvalidCell or
// ErrDuplicateMarker on malformed input.
func FromLiteral(rows [][]int) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	return FromLayers([][][]int{rows})
}

// FromLayers builds a 3D grid; layers[z][y][x] is the cell at (x, y, z).
// Every layer must have the same rectangular shape.
func FromLayers(layers [][][]int) (*Grid, error) {
	if len(layers) == 0 || len(layers[0]) == 0 || len(layers[0][0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(layers[0]), len(layers[0][0])
	g, err := New(w, h, len(layers))
	if err != nil {
		return nil, err
	}
	for z, layer := range layers {
		if len(layer) != h {
			return nil, fmt.Errorf("%w: layer %d has %d rows, want %d", ErrNonRectangular, z, len(layer), h)
		}
		for y, row := range layer {
			if len(row) != w {
				return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
			}
			for x, v := range row {
				if err = g.Set(Pt3(x, y, z), v); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// Width returns the X extent.
func (g *Grid) Width() int { return g.width }

// Height returns the Y extent.
func (g *Grid) Height() int { return g.height }

// Depth returns the Z extent (1 for 2D grids).
func (g *Grid) Depth() int { return g.depth }

// Is3D reports whether the grid has more than one layer.
func (g *Grid) Is3D() bool { return g.depth > 1 }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.width &&
		p.Y >= 0 && p.Y < g.height &&
		p.Z >= 0 && p.Z < g.depth
}

// index maps p to its row-major offset: (z*H + y)*W + x.
func (g *Grid) index(p Pos) int {
	return (p.Z*g.height+p.Y)*g.width + p.X
}

// Value returns the raw marker at p, or Blocked when p is out of bounds.
func (g *Grid) Value(p Pos) int {
	if !g.InBounds(p) {
		return Blocked
	}
	return g.cells[g.index(p)]
}

// Set writes marker v at p. Setting a start or target marker where one already
// exists elsewhere fails with ErrDuplicateMarker; overwriting a marker cell
// releases it. Set must not be called while a search holds the grid.
func (g *Grid) Set(p Pos, v int) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	if v < Start {
		return fmt.Errorf("%w: %d at %s", ErrInvalidCell, v, p)
	}
	switch v {
	case Start:
		if g.start != nil && *g.start != p {
			return fmt.Errorf("%w: start at %s and %s", ErrDuplicateMarker, *g.start, p)
		}
	case Target:
		if g.target != nil && *g.target != p {
			return fmt.Errorf("%w: target at %s and %s", ErrDuplicateMarker, *g.target, p)
		}
	}

	i := g.index(p)
	switch g.cells[i] {
	case Start:
		g.start = nil
	case Target:
		g.target = nil
	}
	g.cells[i] = v
	switch v {
	case Start:
		g.start = &p
	case Target:
		g.target = &p
	}

	return nil
}

// Walkable reports whether p is in bounds and not blocked.
func (g *Grid) Walkable(p Pos) bool {
	return g.InBounds(p) && g.cells[g.index(p)] != Blocked
}

// CoreCost returns the intrinsic terrain penalty of entering p:
// the marker value for cost cells, 0 for plain, start and target cells.
func (g *Grid) CoreCost(p Pos) float64 {
	if v := g.Value(p); v >= MinCostMarker {
		return float64(v)
	}
	return 0
}

// Start returns the start marker position, if any.
func (g *Grid) Start() (Pos, bool) {
	if g.start == nil {
		return Pos{}, false
	}
	return *g.start, true
}

// Target returns the target marker position, if any.
func (g *Grid) Target() (Pos, bool) {
	if g.target == nil {
		return Pos{}, false
	}
	return *g.target, true
}

// Endpoints returns the start and target positions required for a search.
func (g *Grid) Endpoints() (start, target Pos, err error) {
	var ok bool
	if start, ok = g.Start(); !ok {
		return Pos{}, Pos{}, ErrMissingStart
	}
	if target, ok = g.Target(); !ok {
		return Pos{}, Pos{}, ErrMissingTarget
	}
	return start, target, nil
}

// FreeCount returns the number of walkable cells.
func (g *Grid) FreeCount() int {
	n := 0
	for _, v := range g.cells {
		if v != Blocked {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:  g.width,
		height: g.height,
		depth:  g.depth,
		cells:  make([]int, len(g.cells)),
	}
	copy(c.cells, g.cells)
	if g.start != nil {
		s := *g.start
		c.start = &s
	}
	if g.target != nil {
		t := *g.target
		c.target = &t
	}
	return c
}

// Layers returns the grid as a fresh [z][y][x] literal.
func (g *Grid) Layers() [][][]int {
	out := make([][][]int, g.depth)
	for z := range out {
		out[z] = make([][]int, g.height)
		for y := range out[z] {
			row := make([]int, g.width)
			copy(row, g.cells[g.index(Pt3(0, y, z)):])
			out[z][y] = row
		}
	}
	return out
}

// Coordinate converts a row-major index back to a position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Pos {
	plane := g.width * g.height
	z := idx / plane
	rem := idx % plane
	return Pos{X: rem % g.width, Y: rem / g.width, Z: z}
}
