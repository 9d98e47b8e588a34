// Package dijkstra implements Dijkstra's shortest-path algorithm over core.Graph.
//
// Edge lengths default to the Euclidean distance between endpoint
// coordinates, which gives geodesic distances along a spatial skeleton. A
// graph without coordinates falls back to hop counts. Directed graphs are
// followed along outgoing edges.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Any edge with length ≥ InfEdgeThreshold is an impassable wall.
//   - Exploration stops once the minimum distance in the heap exceeds MaxDistance.
//   - Lazy decrease-key: duplicates are pushed and stale entries ignored.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/slotgraph/core"
)

// Dijkstra computes shortest distances from Options.Source to every node
// reachable from it.
//
// Returns:
//
//   - dist: node → minimum distance; only settled nodes appear.
//   - prev: predecessor map if WithReturnPath was given (nil otherwise).
//     prev[v] == u means the shortest path to v arrives from u.
//   - err:  invalid input, a negative length, or the context error.
//
// Preconditions, checked in order: Source set (ErrEmptySource), g non-nil
// (ErrNilGraph), Source live (ErrVertexNotFound).
func Dijkstra(g *core.Graph, opts ...Option) (map[core.NodeID]float64, map[core.NodeID]core.NodeID, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == core.NilNode {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[core.NodeID]float64),
		settled: make(map[core.NodeID]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[core.NodeID]core.NodeID)
	}
	r.weight = cfg.Weight
	if r.weight == nil {
		r.weight = DefaultWeight(g)
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}
	// Tentative distances of unsettled nodes are dropped.
	for v := range r.dist {
		if !r.settled[v] {
			delete(r.dist, v)
			if r.prev != nil {
				delete(r.prev, v)
			}
		}
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	weight  WeightFunc
	dist    map[core.NodeID]float64
	prev    map[core.NodeID]core.NodeID
	settled map[core.NodeID]bool
	pq      nodePQ
}

// init pushes Source at distance 0.
func (r *runner) init() {
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly settles the closest unsettled node and relaxes its edges.
// It ends when the heap drains or its minimum exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.settled[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		if err := r.options.Ctx.Err(); err != nil {
			return err
		}
		r.settled[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and improves distances to its neighbors.
func (r *runner) relax(u core.NodeID) error {
	seq, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}
	du := r.dist[u]
	for e, v := range seq {
		w := r.weight(u, v, e)
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: edge %d (%d→%d) weight=%v", ErrNegativeWeight, e, u, v, w)
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		nd := du + w
		if nd > r.options.MaxDistance {
			continue
		}
		if old, seen := r.dist[v]; seen && nd >= old {
			continue
		}
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}

	return nil
}

// nodeItem is a node and its tentative distance from the source.
type nodeItem struct {
	id   core.NodeID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
