// SPDX-License-Identifier: MIT
// File: enumerate.go
// Role: Outbound enumeration of live nodes, edges and coordinates.
//
// Order: ascending slot index. On a graph that never removed anything this is
// insertion order, so Build(export) reproduces the same ids.

package core

import "iter"

// Nodes yields every live node id in ascending slot order. Lazy, restartable.
func (g *Graph) Nodes() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for h := range g.nodes.All() {
			if !yield(NodeID(h)) {
				return
			}
		}
	}
}

// Edges yields every live edge with its endpoints in ascending slot order.
func (g *Graph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for h := range g.edges.All() {
			if !yield(g.edgeAt(h.Index())) {
				return
			}
		}
	}
}

func (g *Graph) edgeAt(e int) Edge {
	rec := g.edges.At(e)

	return Edge{
		ID:     g.edgeID(e),
		Source: g.nodeID(int(rec.ends[0])),
		Target: g.nodeID(int(rec.ends[1])),
	}
}

// NodeIDs returns every live node id in ascending slot order. O(V).
func (g *Graph) NodeIDs() []NodeID {
	out := make([]NodeID, 0, g.nodes.Len())
	for id := range g.Nodes() {
		out = append(out, id)
	}

	return out
}

// EdgeList returns every live edge in ascending slot order. O(E).
func (g *Graph) EdgeList() []Edge {
	out := make([]Edge, 0, g.edges.Len())
	for e := range g.Edges() {
		out = append(out, e)
	}

	return out
}

// CoordinateArray returns the coordinates of every live node, row-major, in
// NodeIDs() order. Nil when the graph has no coordinates. O(V·Dims()).
func (g *Graph) CoordinateArray() []float64 {
	if g.coords == nil {
		return nil
	}
	d := g.cfg.CoordinateDims
	out := make([]float64, 0, g.nodes.Len()*d)
	for h := range g.nodes.All() {
		out = append(out, g.coords.Row(h.Index())...)
	}

	return out
}

// PositionIndex maps every live node to its position in NodeIDs() order.
// Edge endpoints translated through it form the pairs Build expects.
func (g *Graph) PositionIndex() map[NodeID]int {
	pos := make(map[NodeID]int, g.nodes.Len())
	i := 0
	for id := range g.Nodes() {
		pos[id] = i
		i++
	}

	return pos
}

// Export returns the inbound-construction form of g: node count, coordinate
// rows (nil without coordinates) and endpoint pairs by node position.
// Build(Export()) yields a graph with identical coordinates and edge pairs.
func (g *Graph) Export() (nodes int, coordRows [][]float64, pairs [][2]int) {
	pos := g.PositionIndex()
	nodes = len(pos)
	if g.coords != nil {
		flat := g.CoordinateArray()
		d := g.cfg.CoordinateDims
		coordRows = make([][]float64, nodes)
		for i := range coordRows {
			coordRows[i] = flat[i*d : (i+1)*d : (i+1)*d]
		}
	}
	pairs = make([][2]int, 0, g.edges.Len())
	for e := range g.Edges() {
		pairs = append(pairs, [2]int{pos[e.Source], pos[e.Target]})
	}

	return nodes, coordRows, pairs
}
