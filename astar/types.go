package astar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pathgrid/cost"
	"github.com/katalvlaran/pathgrid/grid"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to New.
	ErrNilGrid = errors.New("astar: grid is nil")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
	// ErrAlreadyEvaluated indicates Evaluate was called twice on one Engine.
	ErrAlreadyEvaluated = errors.New("astar: engine already evaluated")
	// ErrIterationLimit indicates the search hit MaxIterations before finishing.
	ErrIterationLimit = errors.New("astar: iteration limit reached")
)

// State is the engine's position in its state machine.
type State int

const (
	// Running: open set non-empty, goal not yet found.
	Running State = iota
	// Found: terminal success.
	Found
	// Exhausted: terminal failure, open set emptied without reaching the target.
	Exhausted
	// Aborted: stopped by the iteration cap or the context.
	Aborted
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// GoalPolicy selects when the target ends the search.
type GoalPolicy int

const (
	// GoalOnDiscovery stops as soon as the target appears as a neighbor.
	GoalOnDiscovery GoalPolicy = iota
	// GoalOnExpansion stops when the target is popped from the open set.
	GoalOnExpansion
)

// String returns the policy name.
func (p GoalPolicy) String() string {
	switch p {
	case GoalOnDiscovery:
		return "discovery"
	case GoalOnExpansion:
		return "expansion"
	default:
		return fmt.Sprintf("GoalPolicy(%d)", int(p))
	}
}

// ParseGoalPolicy maps "discovery" or "expansion" to a GoalPolicy.
func ParseGoalPolicy(s string) (GoalPolicy, error) {
	switch s {
	case "discovery", "":
		return GoalOnDiscovery, nil
	case "expansion":
		return GoalOnExpansion, nil
	default:
		return 0, fmt.Errorf("%w: goal policy %q", ErrOptionViolation, s)
	}
}

// Snapshot is the per-iteration view handed to the OnExpand hook.
// Open and Closed are fresh slices the hook may keep.
type Snapshot struct {
	Iteration int
	State     State
	Current   Node
	Open      []grid.Pos
	Closed    []grid.Pos
}

// Options configures an Engine.
type Options struct {
	// Ctx bounds the search; checked once per iteration.
	Ctx context.Context

	// Heuristic estimates remaining cost. Default cost.Manhattan.
	Heuristic cost.Heuristic

	// Step charges each move. Default cost.EuclideanStep().
	Step cost.StepCost

	// Goal selects the termination rule. Default GoalOnDiscovery.
	Goal GoalPolicy

	// MaxIterations, if > 0, caps the number of expansions.
	MaxIterations int

	// OnExpand, if set, is called after every expansion and on termination.
	OnExpand func(Snapshot)

	// Logger receives warnings and, with Debug, one record per expansion.
	Logger *slog.Logger

	// Debug enables per-expansion debug logging.
	Debug bool

	// internal error recorded during option parsing
	err error
}

// Option configures Engine behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - context.Background()
//   - Manhattan heuristic, Euclidean step cost
//   - GoalOnDiscovery, no iteration cap
//   - no hook, discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Heuristic: cost.Manhattan,
		Step:      cost.EuclideanStep(),
		Goal:      GoalOnDiscovery,
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithContext sets a context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic selects the heuristic estimate.
func WithHeuristic(h cost.Heuristic) Option {
	return func(o *Options) {
		if h < cost.Manhattan || h > cost.Zero {
			o.err = fmt.Errorf("%w: heuristic %d", ErrOptionViolation, int(h))
			return
		}
		o.Heuristic = h
	}
}

// WithStepCost selects the step cost function.
func WithStepCost(s cost.StepCost) Option {
	return func(o *Options) {
		switch {
		case s.Kind < cost.StepEuclidean || s.Kind > cost.StepStatic:
			o.err = fmt.Errorf("%w: step kind %d", ErrOptionViolation, int(s.Kind))
		case s.Validate() != nil:
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, s.Validate())
		default:
			o.Step = s
		}
	}
}

// WithGoalPolicy selects the termination rule.
func WithGoalPolicy(p GoalPolicy) Option {
	return func(o *Options) {
		if p != GoalOnDiscovery && p != GoalOnExpansion {
			o.err = fmt.Errorf("%w: goal policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Goal = p
	}
}

// WithMaxIterations caps the number of expansions.
//
//	n > 0: cap at n
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithOnExpand registers a per-iteration hook, e.g. for animation.
func WithOnExpand(fn func(Snapshot)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithDebug enables per-expansion debug logging.
func WithDebug() Option {
	return func(o *Options) { o.Debug = true }
}
