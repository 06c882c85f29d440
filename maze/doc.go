// Package maze generates grid mazes for path search.
//
// Overview:
//   - Dimensions are rounded down to odd. Cells with two even coordinates are
//     rooms; every other cell starts as a wall. Cells with two odd coordinates
//     are never opened.
//   - Carving is a randomized depth-first search from room (0,0). It runs on
//     an explicit stack, so large mazes do not grow the goroutine stack.
//   - The carved maze is a spanning tree over the rooms: every free cell is
//     reachable from every other, and there are no cycles.
//   - Braiding optionally opens extra walls next to dead ends, adding cycles.
//     Start is room (0,0) and Target is the opposite corner room.
//
// Usage:
//
//	res, err := maze.Generate(maze.Config{Width: 41, Height: 21, Seed: 7})
//	if err != nil { ... }
//	g, err := res.Marked()
//	if err != nil { ... }
//	path, err := astar.Search(g)
//
// Complexity: O(W·H) time and memory.
package maze
