// Package cost provides the two pluggable strategies of the A* cost model:
// the step cost of moving between adjacent cells and the heuristic estimate of
// the remaining cost to the target.
//
// Both strategies are closed enumerations rather than open interfaces: the set
// of variants is small and fixed, so switch statements over them are exhaustive
// and the zero value of each type is a usable default.
//
// Step costs:
//
//   - StepEuclidean: straight-line distance between the two cells.
//   - StepManhattan: L1 distance between the two cells.
//   - StepStatic:    a constant, independent of the cells.
//
// Heuristics:
//
//   - Manhattan: L1 distance.
//   - Euclidean: straight-line distance.
//   - Chebyshev: largest axis delta.
//   - Octile:    diagonal-aware planar distance, z delta added as straight moves.
//   - Diagonal:  3D generalization weighting triple, double and single axis moves by √3, √2, 1.
//   - Zero:      always 0; A* degenerates to uniform-cost (Dijkstra) search.
//
// Caller contract:
//
// A*'s optimality guarantee holds only if the heuristic never overestimates the
// true remaining cost under the chosen step cost. The engine does not enforce
// this; Admissible reports whether a pairing is safe on 4/6-connected grids.
package cost
