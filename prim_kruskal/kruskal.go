// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
package prim_kruskal

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/slotgraph/core"
	"github.com/katalvlaran/slotgraph/dijkstra"
)

// weighted is an edge with its measured length.
type weighted struct {
	edge core.Edge
	w    float64
}

// Kruskal computes a minimum spanning tree of an undirected graph using a
// disjoint-set over node slot indices with path halving and union by rank.
// A nil weight means dijkstra.DefaultWeight(g).
//
// Edges are considered in ascending weight, ties in slot order, so the
// result is deterministic. Returned edges keep their stored orientation.
// Self-loops are never part of the tree.
//
// Errors: ErrInvalidGraph, ErrDisconnected, ErrInvalidWeight.
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(g *core.Graph, weight dijkstra.WeightFunc) ([]core.Edge, float64, error) {
	weight, err := prepare(g, weight)
	if err != nil {
		return nil, 0, err
	}
	n := g.NodeCount()
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	edges := make([]weighted, 0, g.EdgeCount())
	for e := range g.Edges() {
		if e.Source == e.Target {
			continue
		}
		w := weight(e.Source, e.Target, e.ID)
		if math.IsNaN(w) {
			return nil, 0, fmt.Errorf("%w: edge %d", ErrInvalidWeight, e.ID)
		}
		edges = append(edges, weighted{edge: e, w: w})
	}
	slices.SortStableFunc(edges, func(a, b weighted) int { return cmp.Compare(a.w, b.w) })

	size := g.Stats().NodeCapacity
	parent := make([]int, size)
	rank := make([]uint8, size)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	mst := make([]core.Edge, 0, n-1)
	var total float64
	for _, we := range edges {
		ru, rv := find(we.edge.Source.Index()), find(we.edge.Target.Index())
		if ru == rv {
			continue
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		mst = append(mst, we.edge)
		total += we.w
		if len(mst) == n-1 {
			break
		}
	}
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
