// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Model:
//   • 2D orthogonal grid with 4-neighborhood.
//   • Node r*cols+c (in batch order) sits at (c, r).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each cell in row-major order emits Right then Bottom if present;
//     directed graphs also get each reverse arc.
//
// Complexity: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		ids, err := emitNodes(g, cfg, methodGrid, gridLayout(rows, cols))
		if err != nil {
			return err
		}
		pairs := make([][2]int, 0, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					pairs = append(pairs, [2]int{u, u + 1})
				}
				if r+1 < rows {
					pairs = append(pairs, [2]int{u, u + cols})
				}
			}
		}

		return emitEdges(g, methodGrid, ids, pairs, true)
	}
}
