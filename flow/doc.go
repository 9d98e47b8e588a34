// Package flow implements maximum-flow / minimum-cut algorithms on
// *core.Graph. On a skeleton the typical question is how many edge-disjoint
// routes join two nodes, or which edges must be cut to separate them.
//
// The key algorithms offered are:
//
//   - FordFulkerson: any augmenting path by DFS. O(E · F) on integral
//     capacities, where F is the flow value.
//   - EdmondsKarp: shortest augmenting paths by BFS. O(V · E²).
//   - Dinic: level graph + blocking flows. O(V² · E), O(E · √V) on unit
//     capacities.
//
// All three share one signature and one result:
//
//	func Dinic(ctx context.Context, g *core.Graph, source, sink core.NodeID,
//	    opts FlowOptions) (Result, error)
//
// # Capacities
//
// Edges carry no weights; FlowOptions.Capacity supplies them per edge and
// defaults to UnitCapacity, which makes the max flow the local edge
// connectivity. A directed edge is one arc; an undirected edge carries its
// capacity in both directions. Parallel edges add up. Self-loops are
// ignored. Capacities ≤ Epsilon count as zero; below -Epsilon (or NaN)
// they are rejected with EdgeError.
//
// # Result
//
// Result.Flow gives the net flow per edge, signed along the edge's stored
// direction. Result.SourceSide and Result.Cut describe the minimum cut
// closest to the source, which is the same whichever algorithm ran.
//
// # Errors
//
//	ErrNilGraph       - g is nil.
//	ErrSourceNotFound - the source node is not live.
//	ErrSinkNotFound   - the sink node is not live.
//	ErrSameEndpoints  - source == sink.
//	EdgeError         - negative or NaN capacity.
//	context.Canceled / context.DeadlineExceeded - ctx is done.
package flow
