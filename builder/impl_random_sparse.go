// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like: include each admissible edge independently with prob p.
//   - Undirected: unordered pairs {i,j} with i<j.
//   - Directed: ordered pairs (i,j); self-loops only if g.AllowsSelfLoops().
//   - Nodes sit on the unit circle.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism: trials run i asc then j asc, so outcomes are fixed for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a graph over n nodes with
// independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := emitNodes(g, cfg, methodRandomSparse, circleLayout(n))
		if err != nil {
			return err
		}

		// p ∈ {0,1} draws nothing, so a shared stream is not advanced.
		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}
			return cfg.rng.Float64() < p
		}
		directed, loops := g.Directed(), g.AllowsSelfLoops()
		var pairs [][2]int
		for i := 0; i < n; i++ {
			j0 := i + 1
			if directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if keep() {
					pairs = append(pairs, [2]int{i, j})
				}
			}
		}

		return emitEdges(g, methodRandomSparse, ids, pairs, false)
	}
}
