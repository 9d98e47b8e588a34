// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Lazy adjacency iterators.
//
// Every iterator yields (edge, neighbor) pairs by walking an intrusive list,
// most recent edge first. Sequences are finite and restartable. The graph
// must not be mutated while one is running; collect first to remove.

package core

import "iter"

// Neighbors yields the edges leaving id with the node at their far end.
// Undirected: every incident edge, an undirected self-loop twice.
// Directed: outgoing edges only (same as OutEdges).
//
// Errors: ErrUnknownNode (with ErrInvalidIdentifier) if id is not live.
// Complexity: O(1) to create, O(degree) to drain.
func (g *Graph) Neighbors(id NodeID) (iter.Seq2[EdgeID, NodeID], error) {
	n, err := g.nodeIndex("Neighbors", id)
	if err != nil {
		return nil, err
	}

	return g.listSeq(id, n, listOut), nil
}

// OutEdges yields the outgoing edges of id with their targets.
// Undirected graphs yield every incident edge.
func (g *Graph) OutEdges(id NodeID) (iter.Seq2[EdgeID, NodeID], error) {
	n, err := g.nodeIndex("OutEdges", id)
	if err != nil {
		return nil, err
	}

	return g.listSeq(id, n, listOut), nil
}

// InEdges yields the incoming edges of id with their sources.
// Undirected graphs yield every incident edge.
func (g *Graph) InEdges(id NodeID) (iter.Seq2[EdgeID, NodeID], error) {
	n, err := g.nodeIndex("InEdges", id)
	if err != nil {
		return nil, err
	}
	if !g.cfg.Directed {
		return g.listSeq(id, n, listOut), nil
	}

	return g.listSeq(id, n, listIn), nil
}

// IncidentEdges yields every half-edge anchored at id: outgoing then
// incoming when directed, the single list when undirected. A directed
// self-loop appears once in each part.
func (g *Graph) IncidentEdges(id NodeID) (iter.Seq2[EdgeID, NodeID], error) {
	n, err := g.nodeIndex("IncidentEdges", id)
	if err != nil {
		return nil, err
	}
	if !g.cfg.Directed {
		return g.listSeq(id, n, listOut), nil
	}
	out, in := g.listSeq(id, n, listOut), g.listSeq(id, n, listIn)

	return func(yield func(EdgeID, NodeID) bool) {
		stopped := false
		out(func(e EdgeID, v NodeID) bool {
			stopped = !yield(e, v)

			return !stopped
		})
		if stopped {
			return
		}
		in(yield)
	}, nil
}

// NeighborIDs collects Neighbors(id) into a slice of node ids.
func (g *Graph) NeighborIDs(id NodeID) ([]NodeID, error) {
	seq, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	out := make([]NodeID, 0, g.nodes.At(id.Index()).deg[listOut])
	for _, v := range seq {
		out = append(out, v)
	}

	return out, nil
}

// listSeq walks list l of node slot n. A sequence outliving its node yields nothing.
func (g *Graph) listSeq(id NodeID, n, l int) iter.Seq2[EdgeID, NodeID] {
	return func(yield func(EdgeID, NodeID) bool) {
		if !g.HasNode(id) {
			return
		}
		g.walk(n, l, func(h half) bool {
			return yield(g.edgeID(h.edge()), g.nodeID(g.other(h)))
		})
	}
}
