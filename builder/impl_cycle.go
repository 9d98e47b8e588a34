// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds n nodes evenly on the unit circle.
//   - Emits i -> i+1 for i=0..n-2, then the closing edge (n-1) -> 0.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := emitNodes(g, cfg, methodCycle, circleLayout(n))
		if err != nil {
			return err
		}

		return emitEdges(g, methodCycle, ids, ringPairs(n, 0), false)
	}
}

// ringPairs returns the cycle edges over indices base..base+n-1.
func ringPairs(n, base int) [][2]int {
	pairs := make([][2]int, n)
	for i := 0; i < n; i++ {
		pairs[i] = [2]int{base + i, base + (i+1)%n}
	}

	return pairs
}
