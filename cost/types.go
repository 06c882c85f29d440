package cost

import "errors"

// Sentinel errors for cost model construction and parsing.
var (
	// ErrNegativeCost indicates a static step cost that is negative or not finite.
	ErrNegativeCost = errors.New("cost: step cost must be finite and non-negative")
	// ErrUnknownHeuristic indicates a heuristic name that is not recognized.
	ErrUnknownHeuristic = errors.New("cost: unknown heuristic")
	// ErrUnknownStepCost indicates a step-cost name that is not recognized.
	ErrUnknownStepCost = errors.New("cost: unknown step cost")
)

// Heuristic selects the estimate of remaining cost to the target.
// The zero value is Manhattan.
type Heuristic int

const (
	// Manhattan sums the absolute axis deltas.
	Manhattan Heuristic = iota
	// Euclidean is the straight-line distance.
	Euclidean
	// Chebyshev is the largest absolute axis delta.
	Chebyshev
	// Octile is the 8-connected planar distance plus the z delta.
	Octile
	// Diagonal is the 26-connected spatial distance.
	Diagonal
	// Zero always estimates 0.
	Zero
)

var heuristicNames = [...]string{
	Manhattan: "manhattan",
	Euclidean: "euclidean",
	Chebyshev: "chebyshev",
	Octile:    "octile",
	Diagonal:  "diagonal",
	Zero:      "zero",
}

// StepKind selects how the step cost between adjacent cells is computed.
// The zero value is StepEuclidean.
type StepKind int

const (
	// StepEuclidean charges the straight-line distance.
	StepEuclidean StepKind = iota
	// StepManhattan charges the L1 distance.
	StepManhattan
	// StepStatic charges StepCost.Constant regardless of the cells.
	StepStatic
)

var stepNames = [...]string{
	StepEuclidean: "euclidean",
	StepManhattan: "manhattan",
	StepStatic:    "static",
}

// StepCost is the cost of moving between two adjacent cells.
// Constant is only read for StepStatic.
type StepCost struct {
	Kind     StepKind
	Constant float64
}
