// Package dijkstra computes single-source shortest paths over core.Graph
// with non-negative edge lengths.
//
// Overview:
//
//   - Lengths come from a WeightFunc. The default is the Euclidean distance
//     between endpoint coordinates, i.e. path length along the skeleton; a
//     graph without coordinates counts hops.
//   - ReturnPath: returns a predecessor map; PathTo rebuilds a route.
//   - MaxDistance: nodes farther than the cap are not settled.
//   - InfEdgeThreshold: edges at least this long are impassable.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     no Source option.
//   - ErrNilGraph:        nil graph.
//   - ErrVertexNotFound:  source is not a live node.
//   - ErrNegativeWeight:  a WeightFunc returned a negative or NaN length.
//   - ErrNoPath:          PathTo on an unreachable node.
//
// WithMaxDistance and WithInfEdgeThreshold panic on invalid values.
package dijkstra
