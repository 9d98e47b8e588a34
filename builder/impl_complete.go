// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds n nodes on the unit circle.
//   - Emits i -> j for every i < j in (i, j) lexicographic order;
//     directed graphs also get j -> i right after each pair.
//
// Complexity: O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := emitNodes(g, cfg, methodComplete, circleLayout(n))
		if err != nil {
			return err
		}
		pairs := make([][2]int, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				pairs = append(pairs, [2]int{i, j})
			}
		}

		return emitEdges(g, methodComplete, ids, pairs, true)
	}
}
