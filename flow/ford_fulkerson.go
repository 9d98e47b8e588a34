package flow

import (
	"context"

	"github.com/katalvlaran/slotgraph/core"
)

// FordFulkerson computes the maximum flow from source to sink by pushing
// along any augmenting path found with an iterative DFS.
//
// Errors: ErrNilGraph, ErrSourceNotFound, ErrSinkNotFound, ErrSameEndpoints,
// EdgeError, or ctx.Err() on cancellation.
//
// Complexity: O(E · F) time for integral capacities, where F is the flow
// value; O(V + E) memory.
func FordFulkerson(ctx context.Context, g *core.Graph, source, sink core.NodeID, opts FlowOptions) (Result, error) {
	opts.normalize()
	n, err := buildNetwork(ctx, g, source, sink, opts)
	if err != nil {
		return Result{}, err
	}

	parent := make([]int32, len(n.head))
	var total float64
	for {
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}
		if !n.anyAugmentingPath(parent) {
			break
		}
		bottle := inf
		for v := n.t; v != n.s; v = int(n.to[parent[v]^1]) {
			bottle = min(bottle, n.cap[parent[v]])
		}
		for v := n.t; v != n.s; v = int(n.to[parent[v]^1]) {
			n.push(parent[v], bottle)
		}
		total += bottle
		n.logAugment(opts, "ford-fulkerson", bottle, total)
	}

	return n.result(total), nil
}

// anyAugmentingPath runs a DFS from s, filling parent with the arc used to
// enter each node, and reports whether t was reached.
func (n *network) anyAugmentingPath(parent []int32) bool {
	for i := range parent {
		parent[i] = -1
	}
	seen := make([]bool, len(n.head))
	seen[n.s] = true
	stack := []int32{int32(n.s)}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for a := n.head[u]; a >= 0; a = n.next[a] {
			v := n.to[a]
			if seen[v] || n.cap[a] <= n.eps {
				continue
			}
			seen[v] = true
			parent[v] = a
			if int(v) == n.t {
				return true
			}
			stack = append(stack, v)
		}
	}

	return false
}
