package grid

// Neighbors returns the walkable cells adjacent to p, i.e. at Manhattan distance
// exactly 1, in the fixed order N, E, S, W, Down, Up. p itself is never included
// and blocked cells are never returned. Layer moves are only produced for 3D grids.
// Complexity: O(1).
func (g *Grid) Neighbors(p Pos) []Pos {
	n := 4
	if g.Is3D() {
		n = 6
	}
	out := make([]Pos, 0, n)
	for _, d := range offsets[:n] {
		q := p.Add(d)
		if g.Walkable(q) {
			out = append(out, q)
		}
	}
	return out
}

// Reachable returns every walkable cell connected to from through Neighbors,
// in BFS order starting with from. Returns nil if from is not walkable.
//
// Time:   O(W·H·D).
// Memory: O(W·H·D) for visited flags and output.
func (g *Grid) Reachable(from Pos) []Pos {
	if !g.Walkable(from) {
		return nil
	}
	seen := make([]bool, len(g.cells))
	seen[g.index(from)] = true
	queue := []Pos{from}
	for qi := 0; qi < len(queue); qi++ {
		for _, q := range g.Neighbors(queue[qi]) {
			i := g.index(q)
			if !seen[i] {
				seen[i] = true
				queue = append(queue, q)
			}
		}
	}
	return queue
}

// Components groups all walkable cells into connected regions, scanning in
// row-major order. Each component lists its cells in BFS order.
func (g *Grid) Components() [][]Pos {
	seen := make([]bool, len(g.cells))
	var comps [][]Pos
	for i, v := range g.cells {
		if v == Blocked || seen[i] {
			continue
		}
		comp := g.Reachable(g.Coordinate(i))
		for _, p := range comp {
			seen[g.index(p)] = true
		}
		comps = append(comps, comp)
	}
	return comps
}

// Connected reports whether every walkable cell is reachable from every other.
// An all-blocked grid is trivially connected.
func (g *Grid) Connected() bool {
	return len(g.Components()) <= 1
}
