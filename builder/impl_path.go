// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds n nodes along the x axis, one unit apart.
//   - Emits edges (i-1) -> i for i=1..n-1 in increasing order.
//
// Complexity: O(n) time, O(n) transient space for the batches.

package builder

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := emitNodes(g, cfg, methodPath, lineLayout(n))
		if err != nil {
			return err
		}
		pairs := make([][2]int, 0, n-1)
		for i := 1; i < n; i++ {
			pairs = append(pairs, [2]int{i - 1, i})
		}

		return emitEdges(g, methodPath, ids, pairs, false)
	}
}
