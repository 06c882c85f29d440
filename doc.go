// Package pathgrid finds minimum-cost paths on weighted grids with A* and
// carves mazes to search over.
//
// What's inside:
//
//	grid/     2D/3D cell grids, markers, the 4/6-neighbor rule, YAML literals
//	cost/     heuristics (Manhattan, Euclidean, Chebyshev, Octile, Diagonal, Zero)
//	           and step costs (Euclidean, Manhattan, Static)
//	astar/    the search engine: node arena, open/closed sets, goal policies
//	maze/     randomized depth-first maze carving with optional braiding
//	render/   text (lipgloss), terminal (tcell) and PNG (gg) output
//	metrics/  Prometheus counters and histograms, written as a textfile
//	config/   layered settings (YAML, .env, PATHGRID_* env vars, flags)
//	cmd/pathgrid  the command-line front end
//
// Quick start:
//
//	g, _ := grid.FromLiteral([][]int{
//		{-1, 0, 0},
//		{ 1, 1, 0},
//		{ 2, 0, 0},
//	})
//	res, _ := astar.Search(g, astar.WithHeuristic(cost.Octile))
//	fmt.Println(res.Positions(), res.Cost())
//
// Cell markers: -1 start, 0 free, 1 blocked, 2 target, 3+ extra cost for
// entering the cell.
package pathgrid
