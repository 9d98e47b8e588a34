// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Wₙ = Cₙ₋₁ plus a hub, so n ≥ 4.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Adds the n-1 ring nodes on the unit circle, then the hub at the origin.
//   - Emits the ring edges as Cycle(n-1) does, then hub -> ring spokes in
//     ring order; directed graphs also get ring -> hub.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor for the wheel graph W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		ring := n - 1
		ids, err := emitNodes(g, cfg, methodWheel, append(circleLayout(ring), point{}))
		if err != nil {
			return err
		}
		if err = emitEdges(g, methodWheel, ids, ringPairs(ring, 0), false); err != nil {
			return err
		}
		spokes := make([][2]int, ring)
		for i := range spokes {
			spokes[i] = [2]int{ring, i}
		}

		return emitEdges(g, methodWheel, ids, spokes, true)
	}
}
