package astar

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pathgrid/cost"
	"github.com/katalvlaran/pathgrid/grid"
)

// Engine holds the mutable state of one A* search: the arena, the open and
// closed sets and the iteration counter. The grid is only read.
type Engine struct {
	grid          *grid.Grid
	start, target grid.Pos
	options       Options
	log           *slog.Logger

	arena      *Arena
	open       *NodeSet
	closed     *NodeSet
	state      State
	iterations int
	evaluated  bool
}

// New validates inputs and prepares an engine for a single Evaluate.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start and target must lie within g (grid.ErrOutOfBounds).
//
// A start cell that is not walkable is not an error: the open set starts
// empty and Evaluate reports Exhausted after 0 iterations.
func New(g *grid.Grid, start, target grid.Pos, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s", grid.ErrOutOfBounds, start)
	}
	if !g.InBounds(target) {
		return nil, fmt.Errorf("%w: target %s", grid.ErrOutOfBounds, target)
	}

	arena := &Arena{}
	e := &Engine{
		grid:    g,
		start:   start,
		target:  target,
		options: cfg,
		log:     cfg.Logger.With("component", "astar"),
		arena:   arena,
		open:    NewNodeSet(arena),
		closed:  NewNodeSet(arena),
		state:   Running,
	}

	if !cost.Admissible(cfg.Heuristic, cfg.Step) {
		e.log.Warn("heuristic may overestimate; path optimality not guaranteed",
			"heuristic", cfg.Heuristic.String(), "step", cfg.Step.String())
	}

	if g.Walkable(start) {
		root := Node{Pos: start, CoreCost: g.CoreCost(start)}
		arena.Link(&root, NoParent, target, cfg.Heuristic, cfg.Step)
		e.open.Insert(arena.Add(root))
	}

	return e, nil
}

// State returns the engine's current state.
func (e *Engine) State() State { return e.state }

// Iterations returns the number of completed expansions.
func (e *Engine) Iterations() int { return e.iterations }

// Evaluate runs the search to a terminal state. It returns a non-nil Result in
// every case except a second call (ErrAlreadyEvaluated). When the iteration
// cap or the context stops the search, the Result is Aborted and the error is
// ErrIterationLimit or the wrapped context error.
func (e *Engine) Evaluate() (*Result, error) {
	if e.evaluated {
		return nil, ErrAlreadyEvaluated
	}
	e.evaluated = true

	// Degenerate case: the start already is the target.
	if e.start == e.target && e.open.Len() > 0 {
		root, _ := e.open.IndexOf(e.start)
		return e.finish(Found, root, nil)
	}

	cfg := e.options
	for {
		if err := cfg.Ctx.Err(); err != nil {
			return e.finish(Aborted, NoParent, fmt.Errorf("astar: search aborted: %w", err))
		}
		if cfg.MaxIterations > 0 && e.iterations >= cfg.MaxIterations {
			return e.finish(Aborted, NoParent, fmt.Errorf("%w: %d", ErrIterationLimit, cfg.MaxIterations))
		}

		// 1) Empty frontier: no path.
		cur, ok := e.open.PopLowestF()
		if !ok {
			return e.finish(Exhausted, NoParent, nil)
		}

		// 2) Finalize the lowest-f node.
		e.closed.Insert(cur)
		current := *e.arena.At(cur)
		if cfg.Goal == GoalOnExpansion && current.Pos == e.target {
			return e.finish(Found, cur, nil)
		}

		// 3) Expand.
		if found := e.expand(cur); found != NoParent {
			return e.finish(Found, found, nil)
		}

		// 4) Count the iteration.
		e.iterations++
		if cfg.Debug {
			e.log.Debug("expand",
				"iteration", e.iterations,
				"pos", current.Pos.String(),
				"g", current.G,
				"f", current.F,
				"open", e.open.Len(),
				"closed", e.closed.Len())
		}
		e.notify(current)
	}
}

// expand relaxes every walkable neighbor of the node at cur. Under
// GoalOnDiscovery it returns the arena index of the target node as soon as the
// target is revealed; otherwise NoParent.
func (e *Engine) expand(cur int) int {
	cfg := e.options
	from := e.arena.At(cur).Pos
	for _, p := range FindWalkable(e.grid, from) {
		cand := Node{Pos: p, CoreCost: e.grid.CoreCost(p)}
		e.arena.Link(&cand, cur, e.target, cfg.Heuristic, cfg.Step)

		if cfg.Goal == GoalOnDiscovery && p == e.target {
			return e.arena.Add(cand)
		}
		if e.closed.Contains(p) {
			continue
		}
		if i, ok := e.open.IndexOf(p); ok {
			if existing := e.arena.At(i); existing.G > cand.G {
				*existing = cand
			}
			continue
		}
		e.open.Insert(e.arena.Add(cand))
	}
	return NoParent
}

// finish records the terminal state and packages the Result.
func (e *Engine) finish(state State, head int, err error) (*Result, error) {
	e.state = state
	res := &Result{
		State:      state,
		Iterations: e.iterations,
		Start:      e.start,
		Target:     e.target,
		head:       head,
		arena:      e.arena,
		expanded:   e.closed.Positions(),
	}

	attrs := []any{
		"state", state.String(),
		"iterations", e.iterations,
		"heuristic", e.options.Heuristic.String(),
		"step", e.options.Step.String(),
	}
	if state == Found {
		attrs = append(attrs, "cost", res.Cost(), "length", len(res.Path()))
	}
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	e.log.Debug("search finished", attrs...)

	if head != NoParent {
		e.notify(*e.arena.At(head))
	} else if state != Running {
		e.notify(Node{Pos: e.start, Parent: NoParent})
	}
	return res, err
}

// notify hands a snapshot to the OnExpand hook, if any.
func (e *Engine) notify(current Node) {
	if e.options.OnExpand == nil {
		return
	}
	e.options.OnExpand(Snapshot{
		Iteration: e.iterations,
		State:     e.state,
		Current:   current,
		Open:      e.open.Positions(),
		Closed:    e.closed.Positions(),
	})
}
