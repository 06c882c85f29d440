package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and queries.
var (
	// ErrEmptyGrid indicates input literal has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows (or layers) of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidCell indicates a cell marker outside the known alphabet.
	ErrInvalidCell = errors.New("grid: invalid cell marker")
	// ErrDuplicateMarker indicates more than one start or target marker.
	ErrDuplicateMarker = errors.New("grid: duplicate start or target marker")
	// ErrMissingStart indicates the grid carries no start marker.
	ErrMissingStart = errors.New("grid: no start marker")
	// ErrMissingTarget indicates the grid carries no target marker.
	ErrMissingTarget = errors.New("grid: no target marker")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrBadDimensions indicates a non-positive width, height or depth.
	ErrBadDimensions = errors.New("grid: dimensions must be positive")
)

// Cell markers used by grid literals.
const (
	Start   = -1 // start cell, free, zero core cost
	Free    = 0  // plain floor
	Blocked = 1  // obstacle, never walkable
	Target  = 2  // target cell, free, zero core cost

	// MinCostMarker is the smallest marker read as an explicit core cost.
	MinCostMarker = 3
)

// Pos is a cell coordinate. 2D grids use Z=0.
// Two positions denote the same cell iff all three coordinates are equal.
type Pos struct {
	X, Y, Z int
}

// Pt returns the 2D position (x, y, 0).
func Pt(x, y int) Pos { return Pos{X: x, Y: y} }

// Pt3 returns the 3D position (x, y, z).
func Pt3(x, y, z int) Pos { return Pos{X: x, Y: y, Z: z} }

// Add returns p translated by d.
func (p Pos) Add(d Pos) Pos { return Pos{p.X + d.X, p.Y + d.Y, p.Z + d.Z} }

// Manhattan returns the L1 distance between p and o.
func (p Pos) Manhattan(o Pos) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y) + abs(p.Z-o.Z)
}

// String formats p as "(x,y)" for 2D positions and "(x,y,z)" otherwise.
func (p Pos) String() string {
	if p.Z == 0 {
		return fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Grid is a W×H×D array of cell markers. Dimensions are fixed at construction;
// cells[index(p)] holds the marker at p. start and target cache the marker
// positions so Endpoints is O(1).
type Grid struct {
	width, height, depth int
	cells                []int
	start, target        *Pos
}

// offsets enumerates the 6 axis-aligned unit moves in neighbor order:
// N, E, S, W, Down, Up. 2D grids never yield the last two.
var offsets = [6]Pos{
	{0, -1, 0}, {1, 0, 0}, {0, 1, 0}, {-1, 0, 0},
	{0, 0, -1}, {0, 0, 1},
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
