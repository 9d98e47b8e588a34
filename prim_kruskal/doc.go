// Package prim_kruskal computes minimum spanning trees of an undirected
// core.Graph with Prim's and Kruskal's algorithms.
//
// On a spatial skeleton the default edge length is the Euclidean distance
// between endpoint coordinates (dijkstra.DefaultWeight), so the tree is the
// shortest set of segments joining every node. Graphs without coordinates
// weigh every edge 1; WithWeightFunc supplies any other length.
//
// Algorithms:
//
//   - Kruskal(g, weight): sort all edges by weight, merge components with
//     union-find, stop at |V|-1 edges. O(E log E + α(V)·E).
//   - Prim(g, root, weight): grow one tree from root with a min-heap of
//     candidate edges. O(E log E).
//   - Compute(g, opts...): dispatch on MSTOptions.Method.
//
// Both return the same total weight on a connected graph; the edge sets may
// differ only among equal-weight ties.
//
// Errors:
//
//   - ErrInvalidGraph: nil or directed graph.
//   - ErrDisconnected: empty graph, or no tree spans every node.
//   - ErrInvalidWeight: the weight function returned NaN.
//   - core.ErrUnknownNode: Prim root is not live.
//   - ErrUnknownMethod: Compute with an unrecognised Method.
package prim_kruskal
