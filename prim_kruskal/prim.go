// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
package prim_kruskal

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/slotgraph/core"
	"github.com/katalvlaran/slotgraph/dijkstra"
)

// Prim computes a minimum spanning tree of an undirected graph by growing
// it from root with a min-heap of candidate edges. core.NilNode as root
// picks the first node in slot order; a nil weight means
// dijkstra.DefaultWeight(g).
//
// Returned edges are oriented away from root (Source is already in the
// tree) and appear in the order they join it. Ties break by edge id.
//
// Errors: ErrInvalidGraph, core.ErrUnknownNode for a dead root,
// ErrDisconnected, ErrInvalidWeight.
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, root core.NodeID, weight dijkstra.WeightFunc) ([]core.Edge, float64, error) {
	weight, err := prepare(g, weight)
	if err != nil {
		return nil, 0, err
	}
	if root == core.NilNode {
		for id := range g.Nodes() {
			root = id
			break
		}
	}
	if !g.HasNode(root) {
		return nil, 0, fmt.Errorf("prim_kruskal: root %d: %w", root, core.ErrUnknownNode)
	}
	n := g.NodeCount()

	visited := make(map[core.NodeID]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var total float64
	pq := &edgePQ{}

	push := func(u core.NodeID) error {
		visited[u] = true
		seq, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		for e, v := range seq {
			if visited[v] {
				continue
			}
			w := weight(u, v, e)
			if math.IsNaN(w) {
				return fmt.Errorf("%w: edge %d", ErrInvalidWeight, e)
			}
			heap.Push(pq, candidate{edge: core.Edge{ID: e, Source: u, Target: v}, w: w})
		}
		return nil
	}

	if err = push(root); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.edge.Target] {
			continue
		}
		mst = append(mst, c.edge)
		total += c.w
		if err = push(c.edge.Target); err != nil {
			return nil, 0, err
		}
	}
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// candidate is an edge leaving the tree with its length.
type candidate struct {
	edge core.Edge
	w    float64
}

// edgePQ is a min-heap of candidates ordered by weight, then edge id.
type edgePQ []candidate

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].w != pq[j].w {
		return pq[i].w < pq[j].w
	}
	return pq[i].edge.ID < pq[j].edge.ID
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(candidate)) }

func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
