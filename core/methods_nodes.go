// SPDX-License-Identifier: MIT
// File: methods_nodes.go
// Role: Node lifecycle and degree queries.

package core

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/slot"
)

// AddNode allocates a node and returns its id.
//
// On a coordinate-bearing graph coord must have exactly Dims() values;
// otherwise coord must be empty.
//
// Errors:
//   - ErrDimensionMismatch: len(coord) != Dims() on a coordinate-bearing graph.
//   - ErrNoCoordinates: coord given on a graph without coordinates.
//   - ErrCapacityExceeded: the node arena is at MaxNodes.
//
// On error the graph is unchanged.
// Complexity: O(1) amortized, O(Dims()) for the coordinate copy.
func (g *Graph) AddNode(coord ...float64) (NodeID, error) {
	if err := g.checkCoord("AddNode", coord); err != nil {
		return NilNode, err
	}
	prevCap := g.nodes.Cap()
	h, err := g.nodes.Alloc()
	if err != nil {
		return NilNode, fmt.Errorf("AddNode: %w: %w", ErrCapacityExceeded, err)
	}
	g.syncCoords(prevCap)
	i := h.Index()
	*g.nodes.At(i) = node{head: [2]half{nilHalf, nilHalf}}
	if g.coords != nil {
		copy(g.coords.Row(i), coord)
	}

	return NodeID(h), nil
}

// checkCoord validates a coordinate vector against the graph configuration.
func (g *Graph) checkCoord(op string, coord []float64) error {
	if g.coords == nil {
		if len(coord) != 0 {
			return fmt.Errorf("%s: %w", op, ErrNoCoordinates)
		}

		return nil
	}
	if len(coord) != g.cfg.CoordinateDims {
		return fmt.Errorf("%s: got %d values, want %d: %w", op, len(coord), g.cfg.CoordinateDims, ErrDimensionMismatch)
	}

	return nil
}

// HasNode reports whether id is a live node. O(1).
func (g *Graph) HasNode(id NodeID) bool {
	return g.nodes.Contains(slot.Handle(id))
}

// RemoveNode removes id and every incident edge, then frees its slot and
// coordinate row.
//
// Errors: ErrUnknownNode (with ErrInvalidIdentifier) if id is not live.
// Complexity: O(degree).
func (g *Graph) RemoveNode(id NodeID) error {
	n, err := g.nodeIndex("RemoveNode", id)
	if err != nil {
		return err
	}
	rec := g.nodes.At(n)
	for l := range rec.head {
		for rec.head[l] != nilHalf {
			g.dropEdge(rec.head[l].edge())
		}
	}
	if g.coords != nil {
		g.coords.Zero(n)
	}

	return g.nodes.Free(slot.Handle(id))
}

// Degree returns the number of half-edges anchored at id: incident edges,
// with an undirected self-loop counted twice. For directed graphs it is
// InDegree + OutDegree.
// Complexity: O(1).
func (g *Graph) Degree(id NodeID) (int, error) {
	n, err := g.nodeIndex("Degree", id)
	if err != nil {
		return 0, err
	}
	rec := g.nodes.At(n)
	if g.cfg.Directed {
		return rec.deg[listOut] + rec.deg[listIn], nil
	}

	return rec.deg[listOut], nil
}

// OutDegree returns the number of edges leaving id (Degree when undirected).
func (g *Graph) OutDegree(id NodeID) (int, error) {
	n, err := g.nodeIndex("OutDegree", id)
	if err != nil {
		return 0, err
	}

	return g.nodes.At(n).deg[listOut], nil
}

// InDegree returns the number of edges entering id (Degree when undirected).
func (g *Graph) InDegree(id NodeID) (int, error) {
	n, err := g.nodeIndex("InDegree", id)
	if err != nil {
		return 0, err
	}
	l := listIn
	if !g.cfg.Directed {
		l = listOut
	}

	return g.nodes.At(n).deg[l], nil
}
