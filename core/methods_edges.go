// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle and membership queries.

package core

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/slot"
)

// AddEdge connects u to v and returns the new edge id.
//
// Undirected: one edge, reachable from both endpoints.
// Directed: an edge u→v, listed in u's out list and v's in list.
//
// Errors (checked in this order; the graph is unchanged on error):
//   - ErrUnknownNode (with ErrInvalidIdentifier): u or v is not live.
//   - ErrSelfLoopNotSupported: u == v and self-loops are disabled.
//   - ErrMultiEdgeNotSupported: an edge u→v (or v–u when undirected)
//     exists and multi-edges are disabled.
//   - ErrCapacityExceeded: the edge arena is at MaxEdges.
//
// Complexity: O(1) amortized; O(min degree) when multi-edges are disabled.
func (g *Graph) AddEdge(u, v NodeID) (EdgeID, error) {
	su, sv, err := g.checkEdge("AddEdge", u, v)
	if err != nil {
		return NilEdge, err
	}
	prevCap := g.edges.Cap()
	h, err := g.edges.Alloc()
	if err != nil {
		return NilEdge, fmt.Errorf("AddEdge: %w: %w", ErrCapacityExceeded, err)
	}
	g.logEdgeGrowth(prevCap)
	g.attach(h.Index(), su, sv)

	return EdgeID(h), nil
}

// checkEdge resolves both endpoints and applies the loop and multi-edge policy.
func (g *Graph) checkEdge(op string, u, v NodeID) (int, int, error) {
	su, err := g.nodeIndex(op, u)
	if err != nil {
		return -1, -1, err
	}
	sv, err := g.nodeIndex(op, v)
	if err != nil {
		return -1, -1, err
	}
	if su == sv && !g.cfg.AllowSelfLoops {
		return -1, -1, fmt.Errorf("%s: node %d: %w", op, uint64(u), ErrSelfLoopNotSupported)
	}
	if !g.cfg.AllowMultiEdges && g.connects(su, sv) {
		return -1, -1, fmt.Errorf("%s: %d-%d: %w", op, uint64(u), uint64(v), ErrMultiEdgeNotSupported)
	}

	return su, sv, nil
}

// attach fills edge slot e with endpoints su→sv and links both halves.
func (g *Graph) attach(e, su, sv int) {
	rec := g.edges.At(e)
	rec.ends = [2]int32{int32(su), int32(sv)}
	g.link(e, 0)
	g.link(e, 1)
}

// RemoveEdge unlinks both half-edges of id and frees its slot.
//
// Errors: ErrUnknownEdge (with ErrInvalidIdentifier) if id is not live.
// Complexity: O(1).
func (g *Graph) RemoveEdge(id EdgeID) error {
	e, err := g.edgeIndex("RemoveEdge", id)
	if err != nil {
		return err
	}
	g.dropEdge(e)

	return nil
}

// dropEdge unlinks and frees the live edge in slot e.
func (g *Graph) dropEdge(e int) {
	g.unlink(e, 0)
	g.unlink(e, 1)
	// Cannot fail: e came from a live handle.
	_ = g.edges.Free(g.edges.HandleAt(e))
}

// HasEdge reports whether an edge u→v exists (u–v in either order when
// undirected). Unknown ids yield false.
// Complexity: O(min(deg(u), deg(v))).
func (g *Graph) HasEdge(u, v NodeID) bool {
	su, err := g.nodes.Lookup(slot.Handle(u))
	if err != nil {
		return false
	}
	sv, err := g.nodes.Lookup(slot.Handle(v))
	if err != nil {
		return false
	}

	return g.connects(su, sv)
}

// HasEdgeID reports whether id is a live edge. O(1).
func (g *Graph) HasEdgeID(id EdgeID) bool {
	return g.edges.Contains(slot.Handle(id))
}

// Endpoints returns the source and target of id.
//
// Errors: ErrUnknownEdge (with ErrInvalidIdentifier) if id is not live.
func (g *Graph) Endpoints(id EdgeID) (NodeID, NodeID, error) {
	e, err := g.edgeIndex("Endpoints", id)
	if err != nil {
		return NilNode, NilNode, err
	}
	rec := g.edges.At(e)

	return g.nodeID(int(rec.ends[0])), g.nodeID(int(rec.ends[1])), nil
}

// EdgesBetween returns every edge u→v (u–v in either order when undirected),
// most recent first.
//
// Errors: ErrUnknownNode (with ErrInvalidIdentifier) if u or v is not live.
func (g *Graph) EdgesBetween(u, v NodeID) ([]EdgeID, error) {
	su, err := g.nodeIndex("EdgesBetween", u)
	if err != nil {
		return nil, err
	}
	sv, err := g.nodeIndex("EdgesBetween", v)
	if err != nil {
		return nil, err
	}
	var out []EdgeID
	var loopSeen map[int]bool
	if su == sv && !g.cfg.Directed {
		loopSeen = make(map[int]bool)
	}
	g.walk(su, listOut, func(h half) bool {
		if g.other(h) != sv {
			return true
		}
		e := h.edge()
		if loopSeen != nil {
			// Undirected self-loops put both halves in the same list.
			if loopSeen[e] {
				return true
			}
			loopSeen[e] = true
		}
		out = append(out, g.edgeID(e))

		return true
	})

	return out, nil
}
