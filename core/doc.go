// Package core provides Graph, an arena-backed in-memory graph store built
// for high-frequency structural edits and fast traversal.
//
// Storage layout:
//
//   - Nodes and edges live in two slot arenas (package slot). Removing an
//     entity pushes its slot on a LIFO free list; the next insertion reuses it.
//   - Every edge record carries two half-edges with inline prev/next links.
//     Nodes hold only list heads and degree counters, so linking and
//     unlinking an edge is O(1) and a node's edges are walked in O(degree).
//   - Coordinates, when configured, live in a dense row-major matrix
//     (package coords) whose row i belongs to node slot i.
//
// Identifiers:
//
// NodeID and EdgeID are uint64 values packing a slot index (low 32 bits) and
// the slot's generation (high 32 bits). A fresh graph issues 0, 1, 2, ...
// Removing an entity bumps its slot's generation, so an id held across the
// removal is rejected with ErrUnknownNode/ErrUnknownEdge (both also wrapping
// ErrInvalidIdentifier) instead of aliasing whatever reuses the slot.
//
// Variants and policy (fixed at construction):
//
//	– WithDirected(bool)      undirected (default) or directed with out/in lists
//	– WithSelfLoops(bool)     AddEdge(u, u); default off → ErrSelfLoopNotSupported
//	– WithMultiEdges(bool)    parallel edges; default on, off → ErrMultiEdgeNotSupported
//	– WithCoordinates(dims)   coordinate-bearing graph; AddNode then needs dims values
//	– WithNodeCapacity / WithEdgeCapacity / WithGrowthFactor
//	– WithMaxNodes / WithMaxEdges  hard limits → ErrCapacityExceeded
//	– WithLogger(*slog.Logger)  growth and compaction events at Debug
//
// The same settings are available as a YAML-serializable Config
// (LoadConfig, ParseConfig, NewFromConfig).
//
// Core methods:
//
//	AddNode(coord ...float64) (NodeID, error)          // O(1)†
//	RemoveNode(id NodeID) error                        // O(deg)
//	AddEdge(u, v NodeID) (EdgeID, error)               // O(1)†
//	RemoveEdge(id EdgeID) error                        // O(1)
//	Degree / InDegree / OutDegree(id) (int, error)     // O(1)
//	HasEdge(u, v NodeID) bool                          // O(min deg)
//	Neighbors / OutEdges / InEdges / IncidentEdges(id) // lazy iter.Seq2[EdgeID, NodeID]
//	Subgraph(ids []NodeID) (*Graph, error)             // induced subgraph
//	Coordinate / SetCoordinate / CoordinatesOf / NodeAt
//	Nodes / Edges / NodeIDs / EdgeList / CoordinateArray / Export
//	Build / AddNodes / AddEdges / EdgesOf              // all-or-nothing bulk paths
//	Compact() Remap                                    // explicit shrink, id remap
//	Clone / Clear / Reserve / Stats / Validate
//
// † amortized over arena growth.
//
// Degree counts half-edges: an undirected self-loop contributes 2 and is
// yielded twice by Neighbors; in a directed graph Degree = InDegree + OutDegree.
//
// Every failed mutation leaves the graph unchanged.
//
// Concurrency: Graph has no internal locking. Any number of goroutines may
// read (iterate, query, gather coordinates) while no mutation is in flight.
// Package guard wraps a Graph in a read-write lock for shared use.
package core
