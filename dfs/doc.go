// Package dfs provides depth-first algorithms over core.Graph.
//
//   - DFS: single-source or forest traversal with pre/post-order hooks,
//     depth limit, half-edge filtering and cancellation.
//   - TopologicalSort: reverse post-order of a directed graph; ErrCycleDetected on a back edge.
//   - FindCycle: first cycle found, as a closed node walk.
//   - ConnectedComponents: weak components, explicit stack.
//
// Directed graphs are followed along outgoing edges, except by
// ConnectedComponents which ignores direction. Forest traversals take roots
// in slot order; adjacency is walked most recent edge first.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if the start id is not live.
//   - ErrUndirected             TopologicalSort on an undirected graph.
//   - ErrCycleDetected          TopologicalSort found a back edge.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
