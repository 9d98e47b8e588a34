// Package dfs implements depth-first search (single-source and forest) on core.Graph,
// plus topological ordering, cycle finding and connected components.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Directed graphs are followed along outgoing edges.
//
// Complexity:
//
//   - Time:   O(V + E) plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata maps.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components and start is ignored; otherwise it
// starts only from start.
// On abort by context or hook the partial result is returned with the error;
// its Order is nil.
func DFS(g *core.Graph, start core.NodeID, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.NodeCount()
	res := &DFSResult{
		Order:   make([]core.NodeID, 0, n),
		Depth:   make(map[core.NodeID]int, n),
		Parent:  make(map[core.NodeID]core.NodeID, n),
		Visited: make(map[core.NodeID]bool, n),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	if dopts.FullTraversal {
		for v := range g.Nodes() {
			if res.Visited[v] {
				continue
			}
			if err := walker.traverse(v, 0); err != nil {
				res.Order = nil
				return res, err
			}
		}
	} else if err := walker.traverse(start, 0); err != nil {
		res.Order = nil
		return res, err
	}

	return res, nil
}

// traverse visits node id at the given depth, recursing to neighbors.
func (w *dfsWalker) traverse(id core.NodeID, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for node %d: %w", id, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		seq, err := w.graph.Neighbors(id)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%d): %w", id, err)
		}
		// Hooks may edit the graph; never recurse inside the walk.
		var next []core.NodeID
		for e, nid := range seq {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid, e) {
				w.res.SkippedNeighbors++
				continue
			}
			next = append(next, nid)
		}
		for _, nid := range next {
			if w.res.Visited[nid] || !w.graph.HasNode(nid) {
				continue
			}
			w.res.Parent[nid] = id
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for node %d: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
