// SPDX-License-Identifier: MIT
// File: graph.go
// Role: Graph type, constructors, configuration accessors, buffer bookkeeping.

package core

import (
	"log/slog"

	"github.com/katalvlaran/slotgraph/coords"
	"github.com/katalvlaran/slotgraph/slot"
)

// Graph is an arena-backed graph store.
//
// Nodes and edges live in two slot arenas. Each edge record carries two
// half-edges with inline prev/next links, threaded into per-node intrusive
// lists: one list per node when undirected, an out list and an in list when
// directed. Coordinates, when configured, live in a dense matrix whose row i
// belongs to node slot i.
//
// Graph has no internal locking: one writer, or many readers with no writer.
// See package guard for a locked wrapper.
type Graph struct {
	cfg    Config
	nodes  *slot.Arena[node]
	edges  *slot.Arena[edge]
	coords *coords.Index // nil when cfg.CoordinateDims == 0
	log    *slog.Logger
}

// NewGraph creates an empty Graph. Defaults are DefaultConfig().
// Panics if the combined options do not form a valid Config
// (for example an initial capacity above the hard maximum).
// Complexity: O(initial capacity).
func NewGraph(opts ...GraphOption) *Graph {
	s := settings{cfg: DefaultConfig(), log: slog.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.cfg.Validate(); err != nil {
		panic(err.Error())
	}

	return newGraph(s)
}

// NewFromConfig creates an empty Graph from cfg, returning ErrInvalidConfig
// instead of panicking. opts are applied after cfg (typically WithLogger).
func NewFromConfig(cfg Config, opts ...GraphOption) (*Graph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := settings{cfg: cfg, log: slog.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	return newGraph(s), nil
}

func newGraph(s settings) *Graph {
	c := s.cfg
	g := &Graph{
		cfg:   c,
		nodes: slot.New[node](arenaOptions(c.InitialNodeCapacity, c.GrowthFactor, c.MaxNodes)...),
		edges: slot.New[edge](arenaOptions(c.InitialEdgeCapacity, c.GrowthFactor, c.MaxEdges)...),
		log:   s.log,
	}
	if c.CoordinateDims > 0 {
		g.coords = coords.New(c.CoordinateDims, g.nodes.Cap())
	}

	return g
}

func arenaOptions(initial int, growth float64, max int) []slot.Option {
	opts := []slot.Option{slot.WithInitialCapacity(initial), slot.WithGrowthFactor(growth)}
	if max > 0 {
		opts = append(opts, slot.WithMaxCapacity(max))
	}

	return opts
}

// Config returns the construction-time configuration.
func (g *Graph) Config() Config { return g.cfg }

// Directed reports whether the graph is the directed variant.
func (g *Graph) Directed() bool { return g.cfg.Directed }

// AllowsSelfLoops reports whether AddEdge(u, u) is permitted.
func (g *Graph) AllowsSelfLoops() bool { return g.cfg.AllowSelfLoops }

// AllowsMultiEdges reports whether parallel edges are permitted.
func (g *Graph) AllowsMultiEdges() bool { return g.cfg.AllowMultiEdges }

// Dims returns the coordinate dimensionality, 0 when the graph has none.
func (g *Graph) Dims() int { return g.cfg.CoordinateDims }

// HasCoordinates reports whether the graph is coordinate-bearing.
func (g *Graph) HasCoordinates() bool { return g.coords != nil }

// Logger returns the graph's logger.
func (g *Graph) Logger() *slog.Logger { return g.log }

// NodeCount returns the number of live nodes. O(1).
func (g *Graph) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the number of live edges. O(1).
func (g *Graph) EdgeCount() int { return g.edges.Len() }

// Stats returns a snapshot of sizes and buffer occupancy. O(1).
func (g *Graph) Stats() Stats {
	return Stats{
		Directed:       g.cfg.Directed,
		Nodes:          g.nodes.Len(),
		Edges:          g.edges.Len(),
		NodeCapacity:   g.nodes.Cap(),
		EdgeCapacity:   g.edges.Cap(),
		FreeNodeSlots:  g.nodes.FreeCount(),
		FreeEdgeSlots:  g.edges.FreeCount(),
		CoordinateDims: g.cfg.CoordinateDims,
	}
}

// nodeIndex resolves a live node id to its slot index.
func (g *Graph) nodeIndex(op string, id NodeID) (int, error) {
	i, err := g.nodes.Lookup(slot.Handle(id))
	if err != nil {
		return -1, unknownNode(op, id)
	}

	return i, nil
}

// edgeIndex resolves a live edge id to its slot index.
func (g *Graph) edgeIndex(op string, id EdgeID) (int, error) {
	i, err := g.edges.Lookup(slot.Handle(id))
	if err != nil {
		return -1, unknownEdge(op, id)
	}

	return i, nil
}

func (g *Graph) nodeID(i int) NodeID { return NodeID(g.nodes.HandleAt(i)) }

func (g *Graph) edgeID(i int) EdgeID { return EdgeID(g.edges.HandleAt(i)) }

// syncCoords keeps the coordinate matrix as tall as the node arena and logs
// node arena growth.
func (g *Graph) syncCoords(prevCap int) {
	cur := g.nodes.Cap()
	if cur == prevCap {
		return
	}
	g.log.Debug("core: node arena grew", slog.Int("from", prevCap), slog.Int("to", cur))
	if g.coords != nil {
		g.coords.Resize(cur)
	}
}

func (g *Graph) logEdgeGrowth(prevCap int) {
	if cur := g.edges.Cap(); cur != prevCap {
		g.log.Debug("core: edge arena grew", slog.Int("from", prevCap), slog.Int("to", cur))
	}
}
