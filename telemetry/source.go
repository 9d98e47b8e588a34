package telemetry

import "github.com/katalvlaran/slotgraph/core"

// StatsSource is anything that can snapshot graph occupancy.
// *core.Graph and *guard.Graph both satisfy it.
type StatsSource interface {
	Stats() core.Stats
}

// gauge is one exported series derived from a Stats snapshot.
type gauge struct {
	name string
	help string
	read func(core.Stats) int
}

// gauges lists every exported series, shared by both exporters.
var gauges = []gauge{
	{"nodes", "Live nodes.", func(s core.Stats) int { return s.Nodes }},
	{"edges", "Live edges.", func(s core.Stats) int { return s.Edges }},
	{"node_capacity", "Allocated node slots.", func(s core.Stats) int { return s.NodeCapacity }},
	{"edge_capacity", "Allocated edge slots.", func(s core.Stats) int { return s.EdgeCapacity }},
	{"free_node_slots", "Node slots waiting on the free list.", func(s core.Stats) int { return s.FreeNodeSlots }},
	{"free_edge_slots", "Edge slots waiting on the free list.", func(s core.Stats) int { return s.FreeEdgeSlots }},
}
