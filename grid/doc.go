// Package grid holds the static terrain that A* searches over: a rectangular
// W×H×D array of integer cell markers with walkability and terrain-cost queries.
//
// What:
//
//   - Grid wraps a fixed-size cell array built from a literal, a layer stack or
//     a blank canvas (used by the maze generator).
//   - Cells are markers: -1 start, 0 free, 1 blocked, 2 target, n≥3 free with
//     intrinsic core cost n.
//   - Neighbors are the walkable cells at Manhattan distance exactly 1
//     (4-connected in 2D, 6-connected in 3D). Diagonals are never neighbors.
//
// Why:
//
//   - Search engines need a read-only, bounds-checked view of terrain.
//   - Maze generators need a mutable canvas before the grid is handed over.
//   - Literal files make scenarios reproducible across runs.
//
// Complexity:
//
//   - Value, Walkable, CoreCost, InBounds: O(1).
//   - Neighbors: O(1) (at most 6 candidates).
//   - Reachable: O(W×H×D), Memory: O(W×H×D).
//
// Errors:
//
//   - ErrEmptyGrid: literal has no rows or no columns.
//   - ErrNonRectangular: rows or layers have differing lengths.
//   - ErrInvalidCell: a marker below -1.
//   - ErrDuplicateMarker: more than one start or target marker.
//   - ErrMissingStart / ErrMissingTarget: Endpoints on a grid without markers.
//   - ErrOutOfBounds: position outside the grid.
//   - ErrBadDimensions: non-positive width, height or depth.
//
// The grid is not safe for concurrent mutation. Once handed to a search it
// must be treated as read-only.
package grid
