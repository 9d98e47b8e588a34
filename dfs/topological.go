// Package dfs provides topological sort on directed graphs.
//
// TopologicalSort computes a linear ordering of nodes such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
var ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph
	opts  topoOptions
	state map[core.NodeID]int
	order []core.NodeID
}

// TopologicalSort computes a topological ordering of all nodes in g.
// Roots are taken in slot order. Self-loops count as cycles.
//
// Errors: ErrGraphNil, ErrUndirected, ErrCycleDetected, ErrNeighborFetch,
// or the context error when cancelled via WithCancelContext.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	n := g.NodeCount()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[core.NodeID]int, n),
		order: make([]core.NodeID, 0, n),
	}
	for v := range g.Nodes() {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	return reverse(sorter.order), nil
}

// visit performs a DFS from id, marking states and detecting back edges.
func (t *topoSorter) visit(id core.NodeID) error {
	if err := t.opts.ctx.Err(); err != nil {
		return err
	}
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w: through node %d", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	out, err := t.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNeighborFetch, err)
	}
	for _, v := range out {
		if err = t.visit(v); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
