package cost

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/pathgrid/grid"
)

var (
	sqrt2 = math.Sqrt2
	sqrt3 = math.Sqrt(3)
)

// Heuristics lists every heuristic variant in declaration order.
func Heuristics() []Heuristic {
	return []Heuristic{Manhattan, Euclidean, Chebyshev, Octile, Diagonal, Zero}
}

// Estimate returns the heuristic distance from a to target.
func (h Heuristic) Estimate(a, target grid.Pos) float64 {
	dx, dy, dz := deltas(a, target)
	switch h {
	case Manhattan:
		return dx + dy + dz
	case Euclidean:
		return math.Sqrt(dx*dx + dy*dy + dz*dz)
	case Chebyshev:
		return math.Max(dx, math.Max(dy, dz))
	case Octile:
		lo, hi := math.Min(dx, dy), math.Max(dx, dy)
		return (sqrt2-1)*lo + hi + dz
	case Diagonal:
		// sort so that a ≥ b ≥ c
		a, b, c := dx, dy, dz
		if a < b {
			a, b = b, a
		}
		if b < c {
			b, c = c, b
		}
		if a < b {
			a, b = b, a
		}
		return sqrt3*c + sqrt2*(b-c) + (a - b)
	case Zero:
		return 0
	default:
		panic(fmt.Sprintf("cost: invalid heuristic %d", int(h)))
	}
}

// String returns the lowercase name of h.
func (h Heuristic) String() string {
	if h < 0 || int(h) >= len(heuristicNames) {
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
	return heuristicNames[h]
}

// ParseHeuristic maps a case-insensitive name to its Heuristic.
// "dijkstra" is accepted as an alias for Zero.
func ParseHeuristic(name string) (Heuristic, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "dijkstra" {
		return Zero, nil
	}
	for h, n := range heuristicNames {
		if n == name {
			return Heuristic(h), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

func deltas(a, b grid.Pos) (dx, dy, dz float64) {
	return math.Abs(float64(a.X - b.X)), math.Abs(float64(a.Y - b.Y)), math.Abs(float64(a.Z - b.Z))
}
