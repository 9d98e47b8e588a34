// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a BFSResult containing Order, Depth, Parent and Via (tree edge).
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - Per half-edge filtering via WithFilterNeighbor.
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Directed graphs are followed along outgoing edges.
//
// Determinism
//
//	core.Graph.Neighbors yields edges most recent first. BFS enqueues in that
//	order, so for a given edit history the visit sequence is reproducible.
//	Parallel edges and self-loops never enqueue a node twice.
//
// Complexity (V = nodes reached, E = half-edges scanned)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	)
//	path, err := res.PathTo(goal)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start id is not live.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if adjacency lookup fails mid-search.
//   - ctx.Err() on cancellation; wrapped OnVisit errors.
package bfs
