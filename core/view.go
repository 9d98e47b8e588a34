// SPDX-License-Identifier: MIT
// File: view.go
// Role: Induced subgraph extraction.
// Determinism:
//   - New node ids follow first-occurrence order of the request.
//   - New edge ids follow ascending slot order of the source edges.
// Concurrency:
//   - Read-only on the source graph.

package core

import (
	"fmt"
	"slices"
)

// Subgraph returns a new graph with the same configuration holding the
// requested nodes (with coordinates) and every edge whose endpoints are both
// requested. Node i of the result is the i-th distinct id of ids; duplicate
// ids are skipped. The source graph is not modified.
//
// Errors: ErrUnknownNode (with ErrInvalidIdentifier) for the first id that
// is not live.
// Complexity: O(len(ids) + sum of degrees of the kept nodes).
func (g *Graph) Subgraph(ids []NodeID) (*Graph, error) {
	keep := make(map[int]int, len(ids)) // source slot → position in result
	order := make([]int, 0, len(ids))
	for _, id := range ids {
		n, err := g.nodeIndex("Subgraph", id)
		if err != nil {
			return nil, err
		}
		if _, dup := keep[n]; dup {
			continue
		}
		keep[n] = len(order)
		order = append(order, n)
	}

	// Each induced edge is picked up once, from its source half.
	var edges []int
	for _, n := range order {
		g.walk(n, listOut, func(h half) bool {
			if h.side() == 0 {
				if _, ok := keep[g.other(h)]; ok {
					edges = append(edges, h.edge())
				}
			}

			return true
		})
	}
	slices.Sort(edges)

	cfg := g.cfg
	cfg.InitialNodeCapacity = min(max(len(order), 1), effectiveMax(cfg.MaxNodes))
	cfg.InitialEdgeCapacity = min(max(len(edges), 1), effectiveMax(cfg.MaxEdges))
	sub := newGraph(settings{cfg: cfg, log: g.log})

	var rows [][]float64
	if g.coords != nil {
		rows = make([][]float64, len(order))
		for i, n := range order {
			rows[i] = g.coords.Row(n)
		}
	}
	newIDs, err := sub.AddNodes(len(order), rows)
	if err != nil {
		return nil, fmt.Errorf("Subgraph: %w", err)
	}
	for _, e := range edges {
		rec := g.edges.At(e)
		h, err := sub.edges.Alloc()
		if err != nil {
			return nil, fmt.Errorf("Subgraph: %w: %w", ErrCapacityExceeded, err)
		}
		su := newIDs[keep[int(rec.ends[0])]].Index()
		sv := newIDs[keep[int(rec.ends[1])]].Index()
		sub.attach(h.Index(), su, sv)
	}

	return sub, nil
}

// effectiveMax turns a 0 ("unlimited") hard maximum into a usable bound.
func effectiveMax(m int) int {
	if m == 0 {
		return int(^uint(0) >> 1)
	}

	return m
}
