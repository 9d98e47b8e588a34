// Package dfs labels connected components.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

// ConnectedComponents groups the live nodes of g into connected components,
// ignoring edge direction (weak components for directed graphs).
// Components are ordered by their lowest slot; members keep discovery order.
//
// Complexity: O(V + E) time, O(V) memory. The walk uses an explicit stack,
// so long chains do not deepen the goroutine stack.
func ConnectedComponents(g *core.Graph) ([][]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[core.NodeID]bool, g.NodeCount())
	var comps [][]core.NodeID
	var stack []core.NodeID
	for root := range g.Nodes() {
		if seen[root] {
			continue
		}
		seen[root] = true
		comp := []core.NodeID{}
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, u)
			seq, err := g.IncidentEdges(u)
			if err != nil {
				return nil, fmt.Errorf("dfs: ConnectedComponents: %w", err)
			}
			for _, v := range seq {
				if !seen[v] {
					seen[v] = true
					stack = append(stack, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}
