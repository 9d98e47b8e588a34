// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds the hub first at the layout origin, then n-1 leaves on the unit circle.
//   - Emits hub -> leaf spokes in leaf order; directed graphs also get leaf -> hub.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		pts := append([]point{{}}, circleLayout(n-1)...)
		ids, err := emitNodes(g, cfg, methodStar, pts)
		if err != nil {
			return err
		}
		pairs := make([][2]int, 0, n-1)
		for i := 1; i < n; i++ {
			pairs = append(pairs, [2]int{0, i})
		}

		return emitEdges(g, methodStar, ids, pairs, true)
	}
}
