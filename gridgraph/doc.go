// Package gridgraph treats a 2D raster of cells as a graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - ConnectedComponents finds "islands" of cells with value ≥ LandThreshold.
//   - ExpandIsland computes the fewest water conversions joining two islands (0-1 BFS).
//   - ToGraph turns land cells into a 2-D coordinate-bearing *core.Graph, one
//     node per land cell at (x, y), edges between adjacent land cells.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8 neighbors).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//   - ToGraph:             O(W×H×d) amortized, Memory: O(W×H + E).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
