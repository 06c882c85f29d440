// Package render draws grids and search progress.
//
// A Frame captures what to show: the grid, the start and target, and
// optionally the open and closed sets and the found path. Frames are built
// from a finished astar.Result or from a per-iteration astar.Snapshot.
//
// Three renderers share one palette:
//   - Text writes glyph rows styled with lipgloss; on non-terminal writers the
//     glyphs are written plain.
//   - Terminal draws onto a tcell screen and can be wired into a search with
//     Hook to animate every expansion.
//   - PNG rasterizes the frame with gg, one square per cell.
//
// 3D grids are drawn layer by layer, top to bottom.
package render
