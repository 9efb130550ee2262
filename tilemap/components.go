package tilemap

// Components finds all contiguous regions of walkable cells according to
// g.Conn. Each component is a slice of row-major cell indices in BFS
// order; components are ordered by their first cell in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]int {
	seen := make([]bool, len(g.tiles))
	var comps [][]int

	for i0, t := range g.tiles {
		if !t.Walkable() || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for _, d := range g.neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !g.At(vx, vy).Walkable() {
					continue
				}
				vi := g.index(vx, vy)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Connected reports whether the walkable cells form exactly one component.
func (g *Grid) Connected() bool {
	return len(g.Components()) == 1
}
