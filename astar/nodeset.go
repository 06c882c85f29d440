package astar

import "github.com/katalvlaran/pathgrid/grid"

// NodeSet is a position-keyed view over an Arena. A position is held at most
// once; membership ignores cost fields. Iteration order is insertion order.
type NodeSet struct {
	arena *Arena
	order []int
	index map[grid.Pos]int
}

// NewNodeSet returns an empty set over a.
func NewNodeSet(a *Arena) *NodeSet {
	return &NodeSet{arena: a, index: make(map[grid.Pos]int)}
}

// Len returns the number of positions held.
func (s *NodeSet) Len() int { return len(s.order) }

// Contains reports whether p is held, regardless of its costs.
func (s *NodeSet) Contains(p grid.Pos) bool {
	_, ok := s.index[p]
	return ok
}

// IndexOf returns the arena index held for p.
func (s *NodeSet) IndexOf(p grid.Pos) (int, bool) {
	i, ok := s.index[p]
	return i, ok
}

// Insert adds arena node i under its position. It returns false and leaves
// the set unchanged if the position is already held.
func (s *NodeSet) Insert(i int) bool {
	p := s.arena.At(i).Pos
	if _, ok := s.index[p]; ok {
		return false
	}
	s.index[p] = i
	s.order = append(s.order, i)
	return true
}

// Remove drops p from the set, preserving the order of the rest.
// Complexity: O(n).
func (s *NodeSet) Remove(p grid.Pos) (int, bool) {
	i, ok := s.index[p]
	if !ok {
		return 0, false
	}
	delete(s.index, p)
	for k, v := range s.order {
		if v == i {
			s.order = append(s.order[:k], s.order[k+1:]...)
			break
		}
	}
	return i, true
}

// PickLowestF returns the arena index with minimum F. Ties go to the node
// inserted first. ok is false when the set is empty.
// Complexity: O(n).
func (s *NodeSet) PickLowestF() (i int, ok bool) {
	k := s.lowest()
	if k < 0 {
		return 0, false
	}
	return s.order[k], true
}

// PopLowestF removes and returns the node PickLowestF would return.
func (s *NodeSet) PopLowestF() (i int, ok bool) {
	k := s.lowest()
	if k < 0 {
		return 0, false
	}
	i = s.order[k]
	delete(s.index, s.arena.At(i).Pos)
	s.order = append(s.order[:k], s.order[k+1:]...)
	return i, true
}

// lowest returns the slot of the first minimum-F node, -1 when empty.
func (s *NodeSet) lowest() int {
	best := -1
	for k, i := range s.order {
		if best < 0 || s.arena.At(i).F < s.arena.At(s.order[best]).F {
			best = k
		}
	}
	return best
}

// Positions returns the held positions in insertion order.
func (s *NodeSet) Positions() []grid.Pos {
	out := make([]grid.Pos, len(s.order))
	for k, i := range s.order {
		out[k] = s.arena.At(i).Pos
	}
	return out
}

// FindWalkable returns the cells a search may step to from p: grid cells at
// Manhattan distance exactly 1 that are not blocked. Blocked cells never
// become nodes.
func FindWalkable(g *grid.Grid, p grid.Pos) []grid.Pos {
	return g.Neighbors(p)
}
