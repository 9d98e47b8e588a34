// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_bipartite.go: implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Adds the left side at x=0 then the right side at x=1, each one unit apart on y.
//   - Emits every cross pair L_i -> R_j, i outer, j inner; directed graphs
//     also get R_j -> L_i.
//
// Complexity: O(n1·n2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		pts := make([]point, 0, n1+n2)
		for i := 0; i < n1; i++ {
			pts = append(pts, point{x: 0, y: float64(i)})
		}
		for j := 0; j < n2; j++ {
			pts = append(pts, point{x: 1, y: float64(j)})
		}
		ids, err := emitNodes(g, cfg, methodCompleteBipartite, pts)
		if err != nil {
			return err
		}
		pairs := make([][2]int, 0, n1*n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				pairs = append(pairs, [2]int{i, n1 + j})
			}
		}

		return emitEdges(g, methodCompleteBipartite, ids, pairs, true)
	}
}
