package astar

import "github.com/katalvlaran/pathgrid/grid"

// Result is the outcome of one Evaluate: the terminal state, the number of
// completed expansions and, when Found, the goal node at the head of a parent
// chain inside the engine's arena.
type Result struct {
	State      State
	Iterations int
	Start      grid.Pos
	Target     grid.Pos

	head     int
	arena    *Arena
	expanded []grid.Pos
}

// Found reports whether a path was found.
func (r *Result) Found() bool { return r.State == Found && r.head != NoParent }

// Head returns the goal node. ok is false unless the search Found a path.
func (r *Result) Head() (Node, bool) {
	if !r.Found() {
		return Node{}, false
	}
	return *r.arena.At(r.head), true
}

// Parent returns the node n was reached from. ok is false for a root.
func (r *Result) Parent(n Node) (Node, bool) {
	if n.Parent == NoParent {
		return Node{}, false
	}
	return *r.arena.At(n.Parent), true
}

// Path returns the nodes from start to goal, or nil when no path was found.
func (r *Result) Path() []Node {
	if !r.Found() {
		return nil
	}
	return r.arena.Chain(r.head)
}

// Positions returns the cells of Path in start→goal order.
func (r *Result) Positions() []grid.Pos {
	path := r.Path()
	if path == nil {
		return nil
	}
	out := make([]grid.Pos, len(path))
	for i, n := range path {
		out[i] = n.Pos
	}
	return out
}

// Cost returns the accumulated g of the goal node: the total path cost.
// It is 0 when no path was found.
func (r *Result) Cost() float64 {
	head, ok := r.Head()
	if !ok {
		return 0
	}
	return head.G
}

// Expanded returns the closed cells in the order they were finalized.
func (r *Result) Expanded() []grid.Pos { return r.expanded }

// Search reads the start and target markers from g, then builds and runs
// an engine. Missing markers yield grid.ErrMissingStart or grid.ErrMissingTarget.
func Search(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	start, target, err := g.Endpoints()
	if err != nil {
		return nil, err
	}
	e, err := New(g, start, target, opts...)
	if err != nil {
		return nil, err
	}
	return e.Evaluate()
}
