package maze_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/maze"
)

// TestGenerate_Layout checks the room/wall parity rules and the spanning-tree
// cell count of a perfect maze.
func TestGenerate_Layout(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42, 1337} {
		res, err := maze.Generate(maze.Config{Width: 31, Height: 21, Seed: seed})
		require.NoError(t, err)
		g := res.Grid

		require.Equal(t, 31, g.Width())
		require.Equal(t, 21, g.Height())
		require.Equal(t, seed, res.Seed)
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				p := grid.Pt(x, y)
				switch {
				case x%2 == 0 && y%2 == 0:
					require.True(t, g.Walkable(p), "room %s walled", p)
				case x%2 == 1 && y%2 == 1:
					require.False(t, g.Walkable(p), "pillar %s open", p)
				}
			}
		}
		require.Equal(t, 2*res.Rooms()-1, g.FreeCount())
		require.True(t, g.Connected())
		require.Equal(t, grid.Pt(0, 0), res.Start)
		require.Equal(t, grid.Pt(30, 20), res.Target)
	}
}

// TestGenerate_Deterministic checks that one seed always yields one maze.
func TestGenerate_Deterministic(t *testing.T) {
	a, err := maze.Generate(maze.Config{Width: 25, Height: 25, Seed: 99, Braiding: 0.4})
	require.NoError(t, err)
	b, err := maze.Generate(maze.Config{Width: 25, Height: 25, Seed: 99, Braiding: 0.4})
	require.NoError(t, err)
	require.Equal(t, a.Grid.Layers(), b.Grid.Layers())

	c, err := maze.Generate(maze.Config{Width: 25, Height: 25, Seed: 100, Braiding: 0.4})
	require.NoError(t, err)
	assert.NotEqual(t, a.Grid.Layers(), c.Grid.Layers())

	r := rand.New(rand.NewSource(99))
	d, err := maze.Generate(maze.Config{Width: 25, Height: 25, Seed: 99, Braiding: 0.4, Rand: r})
	require.NoError(t, err)
	require.Equal(t, a.Grid.Layers(), d.Grid.Layers())
	require.Zero(t, d.Seed, "no seed is known for a caller-supplied source")

	e, err := maze.Generate(maze.Config{Width: 25, Height: 25, Braiding: 0.4})
	require.NoError(t, err)
	require.NotZero(t, e.Seed)
	f, err := maze.Generate(maze.Config{Width: 25, Height: 25, Seed: e.Seed, Braiding: 0.4})
	require.NoError(t, err)
	require.Equal(t, e.Grid.Layers(), f.Grid.Layers())
}

// TestGenerate_Dimensions covers rounding and rejection.
func TestGenerate_Dimensions(t *testing.T) {
	cases := []struct {
		name         string
		w, h         int
		wantW, wantH int
		err          error
	}{
		{"Odd", 9, 7, 9, 7, nil},
		{"EvenRoundsDown", 10, 8, 9, 7, nil},
		{"TwoBecomesOne", 2, 5, 1, 5, nil},
		{"SingleRoom", 1, 1, 1, 1, nil},
		{"ZeroWidth", 0, 5, 0, 0, maze.ErrBadDimensions},
		{"NegativeHeight", 5, -3, 0, 0, maze.ErrBadDimensions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := maze.Generate(maze.Config{Width: tc.w, Height: tc.h, Seed: 5})
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantW, res.Grid.Width())
			require.Equal(t, tc.wantH, res.Grid.Height())
			require.True(t, res.Grid.Connected())
		})
	}

	_, err := maze.Generate(maze.Config{Width: 5, Height: 5, Braiding: 1.5})
	require.ErrorIs(t, err, maze.ErrBadBraiding)
}

// TestGenerate_Braiding adds cycles but keeps the parity rules and connectivity.
func TestGenerate_Braiding(t *testing.T) {
	perfect, err := maze.Generate(maze.Config{Width: 41, Height: 41, Seed: 8})
	require.NoError(t, err)
	braided, err := maze.Generate(maze.Config{Width: 41, Height: 41, Seed: 8, Braiding: 1})
	require.NoError(t, err)

	require.Greater(t, braided.Grid.FreeCount(), perfect.Grid.FreeCount())
	require.True(t, braided.Grid.Connected())
	for y := 1; y < 41; y += 2 {
		for x := 1; x < 41; x += 2 {
			require.False(t, braided.Grid.Walkable(grid.Pt(x, y)))
		}
	}
}

// TestGenerate_BraidingKeepsPillarsAttached checks that full braiding never
// leaves a pillar surrounded by open cells.
func TestGenerate_BraidingKeepsPillarsAttached(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		res, err := maze.Generate(maze.Config{Width: 31, Height: 21, Seed: seed, Braiding: 1})
		require.NoError(t, err)
		g := res.Grid
		for y := 1; y < g.Height(); y += 2 {
			for x := 1; x < g.Width(); x += 2 {
				pillar := grid.Pt(x, y)
				require.Less(t, len(g.Neighbors(pillar)), 4, "seed %d: pillar %s isolated", seed, pillar)
			}
		}
	}
}

// TestResult_MarkedSingleRoom keeps only the target marker when the maze is
// one cell.
func TestResult_MarkedSingleRoom(t *testing.T) {
	res, err := maze.Generate(maze.Config{Width: 1, Height: 1, Seed: 1})
	require.NoError(t, err)
	require.Equal(t, res.Start, res.Target)

	m, err := res.Marked()
	require.NoError(t, err)
	_, ok := m.Start()
	require.False(t, ok)
	target, ok := m.Target()
	require.True(t, ok)
	require.Equal(t, grid.Pt(0, 0), target)

	eng, err := astar.New(m, res.Start, res.Target)
	require.NoError(t, err)
	found, err := eng.Evaluate()
	require.NoError(t, err)
	require.True(t, found.Found())
	require.Zero(t, found.Cost())
}

// TestResult_Marked places markers on a copy and the maze is solvable.
func TestResult_Marked(t *testing.T) {
	res, err := maze.Generate(maze.Config{Width: 21, Height: 15, Seed: 3})
	require.NoError(t, err)

	m, err := res.Marked()
	require.NoError(t, err)
	start, target, err := m.Endpoints()
	require.NoError(t, err)
	require.Equal(t, res.Start, start)
	require.Equal(t, res.Target, target)
	_, ok := res.Grid.Start()
	require.False(t, ok, "source grid must stay unmarked")

	out, err := astar.Search(m)
	require.NoError(t, err)
	require.True(t, out.Found())
	require.GreaterOrEqual(t, out.Cost(), float64(start.Manhattan(target)))
	for _, p := range out.Positions() {
		require.True(t, res.Grid.Walkable(p))
	}
}
