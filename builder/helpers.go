// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// helpers.go: shared emission and layout helpers.
//
// Every constructor computes its unit layout and its edge list as index
// pairs, then hands both to emitNodes/emitEdges. Those go through the core
// bulk API, so each batch is all-or-nothing.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/slotgraph/core"
)

// layoutDims is the only coordinate dimensionality builders can fill.
const layoutDims = 2

// point is a position in the unit layout, before scale/origin/jitter.
type point struct{ x, y float64 }

// emitNodes adds one node per point and returns the new ids in order.
// On a graph without coordinates the points are dropped.
func emitNodes(g *core.Graph, cfg builderConfig, method string, pts []point) ([]core.NodeID, error) {
	var rows [][]float64
	switch g.Dims() {
	case 0:
	case layoutDims:
		if cfg.jitter > 0 && cfg.rng == nil {
			return nil, fmt.Errorf("%s: jitter without rng: %w", method, ErrNeedRandSource)
		}
		rows = make([][]float64, len(pts))
		for i, p := range pts {
			rows[i] = cfg.place(p)
		}
	default:
		return nil, fmt.Errorf("%s: %d-D coordinates, layouts are %d-D: %w",
			method, g.Dims(), layoutDims, ErrUnsupportedGraphMode)
	}
	ids, err := g.AddNodes(len(pts), rows)
	if err != nil {
		return nil, fmt.Errorf("%s: AddNodes(%d): %w: %w", method, len(pts), ErrConstructFailed, err)
	}

	return ids, nil
}

// emitEdges adds an edge per index pair. With mirror set, a directed graph
// also receives every reverse arc, placed right after its forward arc.
func emitEdges(g *core.Graph, method string, ids []core.NodeID, pairs [][2]int, mirror bool) error {
	mirror = mirror && g.Directed()
	size := len(pairs)
	if mirror {
		size *= 2
	}
	edges := make([][2]core.NodeID, 0, size)
	for _, p := range pairs {
		u, v := ids[p[0]], ids[p[1]]
		edges = append(edges, [2]core.NodeID{u, v})
		if mirror {
			edges = append(edges, [2]core.NodeID{v, u})
		}
	}
	if _, err := g.AddEdges(edges); err != nil {
		return fmt.Errorf("%s: AddEdges(%d): %w: %w", method, len(edges), ErrConstructFailed, err)
	}

	return nil
}

// lineLayout spaces n points one unit apart along the x axis.
func lineLayout(n int) []point {
	pts := make([]point, n)
	for i := range pts {
		pts[i] = point{x: float64(i)}
	}

	return pts
}

// circleLayout spaces n points evenly on the unit circle, counter-clockwise
// from (1,0).
func circleLayout(n int) []point {
	pts := make([]point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = point{x: math.Cos(a), y: math.Sin(a)}
	}

	return pts
}

// gridLayout places rows×cols points in row-major order, column on x and row on y.
func gridLayout(rows, cols int) []point {
	pts := make([]point, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pts = append(pts, point{x: float64(c), y: float64(r)})
		}
	}

	return pts
}
