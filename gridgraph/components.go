package gridgraph

// ConnectedComponents finds all contiguous regions ("islands") of land cells
// according to gg.Conn. Components are ordered by their first cell in
// row-major order; cells within a component are in BFS discovery order.
//
// Use Coordinate(idx) to convert an index back to (x,y).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H).
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if seen[i0] || !gg.IsLand(x, y) {
				continue
			}
			seen[i0] = true
			comp := []int{i0}
			for qi := 0; qi < len(comp); qi++ {
				ux, uy := gg.Coordinate(comp[qi])
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.IsLand(vx, vy) {
						continue
					}
					if vi := gg.index(vx, vy); !seen[vi] {
						seen[vi] = true
						comp = append(comp, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}
