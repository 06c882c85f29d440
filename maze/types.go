package maze

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/pathgrid/grid"
)

// Sentinel errors for maze generation.
var (
	// ErrBadDimensions indicates a width or height below 1.
	ErrBadDimensions = errors.New("maze: dimensions must be at least 1")
	// ErrBadBraiding indicates a braiding factor outside [0, 1].
	ErrBadBraiding = errors.New("maze: braiding must be within [0, 1]")
)

// Config controls Generate.
type Config struct {
	// Width and Height are rounded down to the nearest odd number.
	Width, Height int

	// Seed drives the random source. 0 picks a time-based seed, which is
	// reported back in Result.Seed.
	Seed int64

	// Braiding is the probability of opening an extra wall at each dead end:
	// 0 yields a perfect maze, 1 removes every dead end it safely can.
	Braiding float64

	// Rand, if set, is used instead of a source built from Seed and Seed
	// is ignored.
	Rand *rand.Rand
}

// Result is a generated maze. Grid holds only Free and Blocked cells.
type Result struct {
	Grid   *grid.Grid
	Start  grid.Pos
	Target grid.Pos

	// Seed reproduces the maze when passed back in Config.Seed. It is 0
	// when Config.Rand supplied the randomness, since no seed is known.
	Seed int64
}

// frame is one level of the carving walk: the room being visited, its
// shuffled directions and the next direction to try.
type frame struct {
	cell grid.Pos
	dirs [4]grid.Pos
	next int
}

// steps are the unit moves between adjacent rooms' shared wall.
var steps = [4]grid.Pos{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}
