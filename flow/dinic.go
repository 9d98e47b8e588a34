package flow

import (
	"context"

	"github.com/katalvlaran/slotgraph/core"
)

// Dinic computes the maximum flow from source to sink using Dinic's
// algorithm (level graph + blocking flows).
//
// Steps:
//  1. Build the residual network (one arc pair per edge).
//  2. BFS from source to assign levels; stop when sink is unreachable.
//  3. Push blocking flow along level-increasing arcs with a DFS that keeps
//     a current-arc pointer per node, optionally rebuilding levels every
//     LevelRebuildInterval augmentations.
//  4. Read the per-edge flow and the min cut off the residual network.
//
// Errors: ErrNilGraph, ErrSourceNotFound, ErrSinkNotFound, ErrSameEndpoints,
// EdgeError, or ctx.Err() on cancellation.
//
// Complexity: O(V² · E) in general; O(E · √V) on unit-capacity networks.
// Memory: O(V + E).
func Dinic(ctx context.Context, g *core.Graph, source, sink core.NodeID, opts FlowOptions) (Result, error) {
	opts.normalize()
	n, err := buildNetwork(ctx, g, source, sink, opts)
	if err != nil {
		return Result{}, err
	}

	level := make([]int32, len(n.head))
	iter := make([]int32, len(n.head))
	var total float64
	augments := 0
	for n.levels(level) {
		copy(iter, n.head)
		for {
			if err = ctx.Err(); err != nil {
				return Result{}, err
			}
			pushed := n.blockingPush(level, iter, n.s, inf)
			if pushed <= n.eps {
				break
			}
			total += pushed
			augments++
			n.logAugment(opts, "dinic", pushed, total)
			if opts.LevelRebuildInterval > 0 && augments%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return n.result(total), nil
}

// levels fills level with BFS distance from s over residual arcs and
// reports whether t is reachable.
func (n *network) levels(level []int32) bool {
	for i := range level {
		level[i] = -1
	}
	level[n.s] = 0
	queue := []int32{int32(n.s)}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for a := n.head[u]; a >= 0; a = n.next[a] {
			v := n.to[a]
			if level[v] < 0 && n.cap[a] > n.eps {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level[n.t] >= 0
}

// blockingPush sends up to available units from u toward t along the
// level graph and returns the amount sent.
func (n *network) blockingPush(level, iter []int32, u int, available float64) float64 {
	if u == n.t {
		return available
	}
	for ; iter[u] >= 0; iter[u] = n.next[iter[u]] {
		a := iter[u]
		v := int(n.to[a])
		if n.cap[a] <= n.eps || level[v] != level[u]+1 {
			continue
		}
		pushed := n.blockingPush(level, iter, v, min(available, n.cap[a]))
		if pushed > n.eps {
			n.push(a, pushed)
			return pushed
		}
	}

	return 0
}
