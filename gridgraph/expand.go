package gridgraph

import "math"

// ExpandIsland finds the fewest water cells to convert so that component
// srcComp joins component dstComp, both indexed as in ConnectedComponents.
// Returns the row-major cell path, land endpoints included, and its cost.
//
// Entering a land cell costs 0, a water cell 1; a 0-1 BFS over a deque
// settles cells in cost order and stops at the first dstComp cell.
// srcComp == dstComp yields a single-cell path at cost 0. Water cells
// holding a negative value are obstacles and are never converted.
//
// Errors: ErrComponentIndex, ErrNoPath.
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	n := gg.Width * gg.Height
	isDst := make([]bool, n)
	for _, i := range comps[dstComp] {
		isDst[i] = true
	}
	dist := make([]int, n)
	prev := make([]int, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = math.MaxInt
		prev[i] = -1
	}

	// Array deque: front pushes grow down from the middle, back pushes grow up.
	// Each cell expands once, so at most n·d pushes land on either side.
	buf := make([]int, 2*n*len(gg.neighborOffsets)+2*len(comps[srcComp])+1)
	head := len(buf) / 2
	tail := head
	for _, i := range comps[srcComp] {
		dist[i] = 0
		buf[tail] = i
		tail++
	}

	target := -1
	for head < tail {
		u := buf[head]
		head++
		if done[u] {
			continue
		}
		done[u] = true
		if isDst[u] {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := 0
			if !gg.IsLand(vx, vy) {
				if gg.CellValues[vy][vx] < 0 {
					continue
				}
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					head--
					buf[head] = v
				} else {
					buf[tail] = v
					tail++
				}
			}
		}
	}
	if target < 0 {
		return nil, 0, ErrNoPath
	}

	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, dist[target], nil
}
