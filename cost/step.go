package cost

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/pathgrid/grid"
)

// EuclideanStep charges the straight-line distance between cells.
func EuclideanStep() StepCost { return StepCost{Kind: StepEuclidean} }

// ManhattanStep charges the L1 distance between cells.
func ManhattanStep() StepCost { return StepCost{Kind: StepManhattan} }

// Static charges c for every move. Returns ErrNegativeCost unless c is
// finite and non-negative.
func Static(c float64) (StepCost, error) {
	s := StepCost{Kind: StepStatic, Constant: c}
	if err := s.Validate(); err != nil {
		return StepCost{}, err
	}
	return s, nil
}

// Validate checks the constant of a static step cost. NaN and infinite
// constants are rejected along with negative ones.
func (s StepCost) Validate() error {
	if s.Kind != StepStatic {
		return nil
	}
	if !(s.Constant >= 0) || math.IsInf(s.Constant, 1) {
		return fmt.Errorf("%w: %v", ErrNegativeCost, s.Constant)
	}
	return nil
}

// Cost returns the non-negative cost of moving from a to b.
func (s StepCost) Cost(a, b grid.Pos) float64 {
	dx, dy, dz := deltas(a, b)
	switch s.Kind {
	case StepEuclidean:
		return math.Sqrt(dx*dx + dy*dy + dz*dz)
	case StepManhattan:
		return dx + dy + dz
	case StepStatic:
		return s.Constant
	default:
		panic(fmt.Sprintf("cost: invalid step kind %d", int(s.Kind)))
	}
}

// UnitMove returns the cost this step function charges for one axis-aligned
// move of length 1, the only move the grid neighbor rule produces.
func (s StepCost) UnitMove() float64 {
	return s.Cost(grid.Pos{}, grid.Pt(1, 0))
}

// String returns the step-cost name, with the constant for StepStatic.
func (s StepCost) String() string {
	if s.Kind == StepStatic {
		return fmt.Sprintf("static(%g)", s.Constant)
	}
	return s.Kind.String()
}

// String returns the lowercase name of k.
func (k StepKind) String() string {
	if k < 0 || int(k) >= len(stepNames) {
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
	return stepNames[k]
}

// ParseStepCost maps a case-insensitive name to a StepCost; constant is used
// only for "static".
func ParseStepCost(name string, constant float64) (StepCost, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "euclidean":
		return EuclideanStep(), nil
	case "manhattan":
		return ManhattanStep(), nil
	case "static", "constant":
		return Static(constant)
	default:
		return StepCost{}, fmt.Errorf("%w: %q", ErrUnknownStepCost, name)
	}
}

// Admissible reports whether h never overestimates the true remaining cost
// when moves are charged by s on a 4- or 6-connected grid. Every bundled
// heuristic is bounded by the L1 distance, and every path needs at least
// L1 unit moves, so the pairing is admissible when a unit move costs at
// least 1. Zero is always admissible. Core costs only add to the true cost.
func Admissible(h Heuristic, s StepCost) bool {
	return h == Zero || s.UnitMove() >= 1
}
