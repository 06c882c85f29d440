// Package astar implements A* search over a grid.Grid.
//
// Overview:
//
//   - An Engine is built once for a fixed grid, start and target, and is
//     single-use: one Evaluate call produces one Result.
//   - Search state lives in a node arena. Each Node carries g (best known cost
//     from start), h (heuristic estimate to target), f = g + h, the cell's core
//     cost and the arena index of its parent. Following parent indices from the
//     goal and reversing yields the start→goal path.
//   - The open set (frontier) and closed set are NodeSets keyed by position only,
//     so rediscovering a cell never creates a duplicate entry.
//
// Cost update rule:
//
//	root:        g = 0
//	child of p:  g = p.g + step(p, n) + n.core
//	always:      h = heuristic(n, target); f = g + h
//
// Loop (one iteration = one expansion):
//
//  1. Empty open set → Exhausted.
//  2. Pop the lowest-f node (linear scan, first minimum in encounter order)
//     and move it to closed.
//  3. For each walkable neighbor: under GoalOnDiscovery, a neighbor equal to the
//     target ends the search immediately (Found). Otherwise the candidate is
//     discarded if closed, inserted if new, or replaces the open entry when the
//     open entry's g is strictly greater.
//  4. Count the iteration and repeat.
//
// Goal policies:
//
//   - GoalOnDiscovery (default): accept the first time the target is revealed as
//     a neighbor. This is the historical behavior and saves the last expansion.
//   - GoalOnExpansion: textbook termination; the target is queued like any node
//     and the search ends when it is popped as the lowest-f node.
//
// Safety:
//
//   - WithMaxIterations caps expansions; the search ends Aborted with ErrIterationLimit.
//   - WithContext bounds wall-clock time; the search ends Aborted with the context error.
//
// No-path is a normal outcome (State Exhausted, nil error), not an error.
// An Engine is not safe for concurrent use.
package astar
