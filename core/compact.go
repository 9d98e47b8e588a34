// SPDX-License-Identifier: MIT
// File: compact.go
// Role: Explicit compaction of both arenas and the coordinate matrix.
//
// Compact is the only operation that moves live entities. Relative order of
// nodes, of edges, and of every adjacency list is preserved. Ids of entities
// that did not move stay valid; every other pre-compaction id becomes stale
// and must be translated through the returned Remap.

package core

import "log/slog"

// Remap translates ids issued before a Compact into ids valid after it.
type Remap struct {
	oldNodes, newNodes []NodeID
	oldEdges, newEdges []EdgeID
}

// Node returns the post-compaction id of old, or false if old was not live
// when Compact ran.
func (r Remap) Node(old NodeID) (NodeID, bool) {
	i := old.Index()
	if old == NilNode || i >= len(r.oldNodes) || r.oldNodes[i] != old {
		return NilNode, false
	}

	return r.newNodes[i], true
}

// Edge returns the post-compaction id of old, or false if old was not live
// when Compact ran.
func (r Remap) Edge(old EdgeID) (EdgeID, bool) {
	i := old.Index()
	if old == NilEdge || i >= len(r.oldEdges) || r.oldEdges[i] != old {
		return NilEdge, false
	}

	return r.newEdges[i], true
}

// Moved returns how many nodes and edges changed slot.
func (r Remap) Moved() (nodes, edges int) {
	for i, id := range r.oldNodes {
		if id != NilNode && id != r.newNodes[i] {
			nodes++
		}
	}
	for i, id := range r.oldEdges {
		if id != NilEdge && id != r.newEdges[i] {
			edges++
		}
	}

	return nodes, edges
}

// Compact packs live nodes and edges into dense prefixes of their arenas,
// releases free slots beyond max(live count, initial capacity) and returns
// the id translation table.
// Complexity: O(used node slots·dims + used edge slots).
func (g *Graph) Compact() Remap {
	var r Remap
	r.oldNodes = make([]NodeID, g.nodes.Used())
	for i := range r.oldNodes {
		r.oldNodes[i] = NilNode
		if g.nodes.LiveAt(i) {
			r.oldNodes[i] = g.nodeID(i)
		}
	}
	r.oldEdges = make([]EdgeID, g.edges.Used())
	for i := range r.oldEdges {
		r.oldEdges[i] = NilEdge
		if g.edges.LiveAt(i) {
			r.oldEdges[i] = g.edgeID(i)
		}
	}
	nodeCap, edgeCap := g.nodes.Cap(), g.edges.Cap()

	nodeMap := g.nodes.Compact()
	if g.coords != nil {
		g.coords.Compact(nodeMap, g.nodes.Cap())
	}
	edgeMap := g.edges.Compact()

	moveHalf := func(h half) half {
		if h == nilHalf {
			return nilHalf
		}

		return mkHalf(int(edgeMap[h.edge()]), h.side())
	}
	for e := 0; e < g.edges.Used(); e++ {
		rec := g.edges.At(e)
		for s := range rec.ends {
			rec.ends[s] = nodeMap[rec.ends[s]]
			rec.link[s].prev = moveHalf(rec.link[s].prev)
			rec.link[s].next = moveHalf(rec.link[s].next)
		}
	}
	for n := 0; n < g.nodes.Used(); n++ {
		rec := g.nodes.At(n)
		for l := range rec.head {
			rec.head[l] = moveHalf(rec.head[l])
		}
	}

	r.newNodes = make([]NodeID, len(nodeMap))
	for i, j := range nodeMap {
		r.newNodes[i] = NilNode
		if j >= 0 {
			r.newNodes[i] = NodeID(g.nodes.HandleAt(int(j)))
		}
	}
	r.newEdges = make([]EdgeID, len(edgeMap))
	for i, j := range edgeMap {
		r.newEdges[i] = NilEdge
		if j >= 0 {
			r.newEdges[i] = EdgeID(g.edges.HandleAt(int(j)))
		}
	}

	movedNodes, movedEdges := r.Moved()
	g.log.Debug("core: compacted",
		slog.Int("nodes", g.nodes.Len()), slog.Int("edges", g.edges.Len()),
		slog.Int("moved_nodes", movedNodes), slog.Int("moved_edges", movedEdges),
		slog.Int("node_cap_from", nodeCap), slog.Int("node_cap_to", g.nodes.Cap()),
		slog.Int("edge_cap_from", edgeCap), slog.Int("edge_cap_to", g.edges.Cap()))

	return r
}
