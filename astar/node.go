package astar

import (
	"github.com/katalvlaran/pathgrid/cost"
	"github.com/katalvlaran/pathgrid/grid"
)

// NoParent marks a root node.
const NoParent = -1

// Node is the per-cell search record. Parent is an arena index, NoParent for
// the start node. F always equals G + H after Update.
type Node struct {
	Pos      grid.Pos
	G, H, F  float64
	CoreCost float64
	Parent   int
}

// Update recomputes the node's costs for its current parent assignment.
// parent must be the node n.Parent refers to, or nil when n is a root.
//
//	root:       G = 0
//	otherwise:  G = parent.G + step(parent, n) + n.CoreCost
//	always:     H = heuristic(n, target), F = G + H
func (n *Node) Update(parent *Node, target grid.Pos, h cost.Heuristic, step cost.StepCost) {
	if parent == nil {
		n.G = 0
	} else {
		n.G = parent.G + step.Cost(parent.Pos, n.Pos) + n.CoreCost
	}
	n.H = h.Estimate(n.Pos, target)
	n.F = n.G + n.H
}

// Arena is the growable node store. Indices are stable for the arena's
// lifetime, so parent links are plain ints.
type Arena struct {
	nodes []Node
}

// Add appends n and returns its index.
func (a *Arena) Add(n Node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

// At returns a pointer to the node at i. The pointer is invalidated by Add.
func (a *Arena) At(i int) *Node { return &a.nodes[i] }

// Len returns the number of stored nodes.
func (a *Arena) Len() int { return len(a.nodes) }

// Link sets n's parent to the node at parent (NoParent for a root) and runs
// the cost update, so costs are never stale after a parent change.
func (a *Arena) Link(n *Node, parent int, target grid.Pos, h cost.Heuristic, step cost.StepCost) {
	n.Parent = parent
	if parent == NoParent {
		n.Update(nil, target, h, step)
		return
	}
	n.Update(&a.nodes[parent], target, h, step)
}

// Chain returns the nodes from the root to i, in root-first order.
// Complexity: O(path length).
func (a *Arena) Chain(i int) []Node {
	var path []Node
	for at := i; at != NoParent; at = a.nodes[at].Parent {
		path = append(path, a.nodes[at])
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}
