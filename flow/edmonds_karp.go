package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/slotgraph/core"
)

// EdmondsKarp computes the maximum flow from source to sink using the
// Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// Errors: ErrNilGraph, ErrSourceNotFound, ErrSinkNotFound, ErrSameEndpoints,
// EdgeError, or ctx.Err() on cancellation.
//
// Complexity: O(V · E²) time, O(V + E) memory.
func EdmondsKarp(ctx context.Context, g *core.Graph, source, sink core.NodeID, opts FlowOptions) (Result, error) {
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
		bottle := n.shortestAugmentingPath(parent)
		if bottle <= n.eps {
			break
		}
		for v := n.t; v != n.s; {
			a := parent[v]
			n.push(a, bottle)
			v = int(n.to[a^1])
		}
		total += bottle
		n.logAugment(opts, "edmonds-karp", bottle, total)
	}

	return n.result(total), nil
}

// shortestAugmentingPath runs BFS from s, filling parent with the arc used
// to enter each node, and returns the bottleneck to t (0 when unreachable).
func (n *network) shortestAugmentingPath(parent []int32) float64 {
	for i := range parent {
		parent[i] = -1
	}
	best := make([]float64, len(n.head))
	best[n.s] = math.Inf(1)
	queue := []int32{int32(n.s)}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for a := n.head[u]; a >= 0; a = n.next[a] {
			v := n.to[a]
			if int(v) == n.s || parent[v] >= 0 || n.cap[a] <= n.eps {
				continue
			}
			parent[v] = a
			best[v] = min(best[u], n.cap[a])
			if int(v) == n.t {
				return best[v]
			}
			queue = append(queue, v)
		}
	}

	return 0
}
