// Package slotgraph is an in-memory graph store for spatial skeletons:
// nodes and edges live in generational slot arenas, so ids stay small and
// dense, removal is O(degree), and freed slots are recycled without
// invalidating the ids still in use.
//
// What is in the box:
//
//	slot/         generic generational arena (Arena[T], Handle)
//	coords/       flat row-major coordinate buffer with a position lookup
//	core/         Graph: nodes, edges, half-edge adjacency, coordinates,
//	              bulk import/export, compaction, YAML config, slog logging
//	guard/        RWMutex wrapper for concurrent writers and readers
//	builder/      deterministic generators (path, cycle, star, wheel,
//	              complete, bipartite, grid, random sparse) with 2-D layouts
//	tabular/      columnar node/edge tables and CSV import/export
//	bfs/, dfs/    traversals, components, cycle detection, topological sort
//	dijkstra/     shortest paths with Euclidean default weights
//	prim_kruskal/ minimum spanning trees
//	flow/         max-flow / min-cut (Ford-Fulkerson, Edmonds-Karp, Dinic)
//	gridgraph/    raster islands, bridge search, raster to skeleton graph
//	telemetry/    Prometheus collector and OpenTelemetry gauges over Stats
//	cmd/slotgraph CLI: export, stats, cut, grid, serve
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    3───2
//
//	g, _ := core.Build(4, [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
//	    [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}})
//
//	go get github.com/katalvlaran/slotgraph
package slotgraph
