package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/grid"
)

// TestNeighbors_2D verifies the 4-connected rule, order and blocked-cell exclusion.
func TestNeighbors_2D(t *testing.T) {
	g, err := grid.FromLiteral([][]int{
		{0, 1, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)

	// N is blocked; order is E, S, W.
	assert.Equal(t, []grid.Pos{grid.Pt(2, 1), grid.Pt(1, 2), grid.Pt(0, 1)}, g.Neighbors(grid.Pt(1, 1)))
	// Corner: no out-of-bounds candidates, no diagonals.
	assert.Equal(t, []grid.Pos{grid.Pt(0, 1)}, g.Neighbors(grid.Pt(0, 0)))

	for _, n := range g.Neighbors(grid.Pt(1, 1)) {
		assert.Equal(t, 1, n.Manhattan(grid.Pt(1, 1)))
	}
}

// TestNeighbors_3D verifies 6-connectivity across layers.
func TestNeighbors_3D(t *testing.T) {
	g, err := grid.New(3, 3, 3)
	require.NoError(t, err)

	assert.Len(t, g.Neighbors(grid.Pt3(1, 1, 1)), 6)
	assert.Len(t, g.Neighbors(grid.Pt3(0, 0, 0)), 3)
	assert.Contains(t, g.Neighbors(grid.Pt3(1, 1, 1)), grid.Pt3(1, 1, 2))
}

// TestReachable_And_Components checks BFS connectivity.
func TestReachable_And_Components(t *testing.T) {
	g, err := grid.FromLiteral([][]int{
		{0, 0, 1, 0},
		{1, 0, 1, 0},
		{0, 1, 1, 0},
	})
	require.NoError(t, err)

	r := g.Reachable(grid.Pt(0, 0))
	assert.ElementsMatch(t, []grid.Pos{grid.Pt(0, 0), grid.Pt(1, 0), grid.Pt(1, 1)}, r)
	assert.Nil(t, g.Reachable(grid.Pt(2, 0)))

	comps := g.Components()
	require.Len(t, comps, 3)
	assert.Equal(t, grid.Pt(0, 0), comps[0][0])
	assert.Equal(t, grid.Pt(3, 0), comps[1][0])
	assert.Equal(t, []grid.Pos{grid.Pt(0, 2)}, comps[2])
	assert.False(t, g.Connected())

	open, err := grid.New(4, 4, 1)
	require.NoError(t, err)
	assert.True(t, open.Connected())
	assert.Len(t, open.Reachable(grid.Pt(2, 2)), 16)
}
