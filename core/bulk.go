// SPDX-License-Identifier: MIT
// File: bulk.go
// Role: Bulk construction and batch queries.
//
// Every bulk mutation is all-or-nothing: validate the whole batch, reserve
// arena room once, then apply. Nothing is visible if validation or the
// reservation fails.

package core

import (
	"fmt"
	"log/slog"
)

// Build constructs a graph from nodes positions, optional coordinate rows and
// (source, target) pairs of node positions. Node i gets the i-th id in
// insertion order (NodeID(i) on a fresh graph); edges likewise.
//
// If coordRows is non-nil it must hold one row per node. When no
// WithCoordinates option is given the dimensionality is taken from the
// first row. Arena capacities are raised to fit the input.
//
// Errors: ErrInvalidArgument, ErrDimensionMismatch, ErrUnknownNode for a
// position outside [0, nodes), the loop and multi-edge policy errors,
// ErrCapacityExceeded, ErrInvalidConfig.
// Complexity: O(nodes·dims + len(pairs)).
func Build(nodes int, coordRows [][]float64, pairs [][2]int, opts ...GraphOption) (*Graph, error) {
	if nodes < 0 {
		return nil, fmt.Errorf("Build: node count %d: %w", nodes, ErrInvalidArgument)
	}
	if coordRows != nil && len(coordRows) != nodes {
		return nil, fmt.Errorf("Build: %d coordinate rows for %d nodes: %w", len(coordRows), nodes, ErrInvalidArgument)
	}
	s := settings{cfg: DefaultConfig(), log: slog.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.cfg.CoordinateDims == 0 && len(coordRows) > 0 {
		s.cfg.CoordinateDims = len(coordRows[0])
	}
	if s.cfg.MaxNodes > 0 && nodes > s.cfg.MaxNodes {
		return nil, fmt.Errorf("Build: %d nodes, max %d: %w", nodes, s.cfg.MaxNodes, ErrCapacityExceeded)
	}
	if s.cfg.MaxEdges > 0 && len(pairs) > s.cfg.MaxEdges {
		return nil, fmt.Errorf("Build: %d edges, max %d: %w", len(pairs), s.cfg.MaxEdges, ErrCapacityExceeded)
	}
	s.cfg.InitialNodeCapacity = max(s.cfg.InitialNodeCapacity, nodes)
	s.cfg.InitialEdgeCapacity = max(s.cfg.InitialEdgeCapacity, len(pairs))
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	g := newGraph(s)

	ids, err := g.AddNodes(nodes, coordRows)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	edges := make([][2]NodeID, len(pairs))
	for i, p := range pairs {
		for side, pos := range p {
			if pos < 0 || pos >= nodes {
				return nil, fmt.Errorf("Build: pair %d: position %d not in [0,%d): %w: %w",
					i, pos, nodes, ErrUnknownNode, ErrInvalidIdentifier)
			}
			edges[i][side] = ids[pos]
		}
	}
	if _, err = g.AddEdges(edges); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	g.log.Debug("core: graph built", slog.Int("nodes", nodes), slog.Int("edges", len(pairs)))

	return g, nil
}

// AddNodes appends n nodes and returns their ids in order. coordRows is nil
// on a graph without coordinates, or holds n rows of Dims() values.
//
// Errors: ErrInvalidArgument, ErrDimensionMismatch, ErrNoCoordinates,
// ErrCapacityExceeded. The graph is unchanged on error.
// Complexity: O(n·dims) amortized.
func (g *Graph) AddNodes(n int, coordRows [][]float64) ([]NodeID, error) {
	if n < 0 {
		return nil, fmt.Errorf("AddNodes: count %d: %w", n, ErrInvalidArgument)
	}
	if coordRows != nil && len(coordRows) != n {
		return nil, fmt.Errorf("AddNodes: %d coordinate rows for %d nodes: %w", len(coordRows), n, ErrInvalidArgument)
	}
	if g.coords != nil && coordRows == nil && n > 0 {
		return nil, fmt.Errorf("AddNodes: missing coordinates: %w", ErrDimensionMismatch)
	}
	for i := range coordRows {
		if err := g.checkCoord("AddNodes", coordRows[i]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	prevCap := g.nodes.Cap()
	if err := g.nodes.Reserve(n); err != nil {
		return nil, fmt.Errorf("AddNodes: %w: %w", ErrCapacityExceeded, err)
	}
	g.syncCoords(prevCap)

	ids := make([]NodeID, n)
	for i := range ids {
		h, _ := g.nodes.Alloc() // reserved
		j := h.Index()
		*g.nodes.At(j) = node{head: [2]half{nilHalf, nilHalf}}
		if g.coords != nil {
			copy(g.coords.Row(j), coordRows[i])
		}
		ids[i] = NodeID(h)
	}

	return ids, nil
}

// AddEdges appends one edge per (source, target) pair and returns their ids
// in order. Multi-edge policy applies across the batch as well as against
// existing edges.
//
// Errors: as AddEdge, for the first offending pair. The graph is unchanged
// on error.
// Complexity: O(len(pairs)) amortized; plus O(min degree) per pair when
// multi-edges are disabled.
func (g *Graph) AddEdges(pairs [][2]NodeID) ([]EdgeID, error) {
	slots := make([][2]int, len(pairs))
	var batch map[[2]int]bool
	if !g.cfg.AllowMultiEdges {
		batch = make(map[[2]int]bool, len(pairs))
	}
	for i, p := range pairs {
		su, sv, err := g.checkEdge("AddEdges", p[0], p[1])
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		if batch != nil {
			k := [2]int{su, sv}
			if !g.cfg.Directed && su > sv {
				k = [2]int{sv, su}
			}
			if batch[k] {
				return nil, fmt.Errorf("AddEdges: pair %d: %d-%d repeated: %w",
					i, uint64(p[0]), uint64(p[1]), ErrMultiEdgeNotSupported)
			}
			batch[k] = true
		}
		slots[i] = [2]int{su, sv}
	}
	prevCap := g.edges.Cap()
	if err := g.edges.Reserve(len(pairs)); err != nil {
		return nil, fmt.Errorf("AddEdges: %w: %w", ErrCapacityExceeded, err)
	}
	g.logEdgeGrowth(prevCap)

	ids := make([]EdgeID, len(pairs))
	for i, s := range slots {
		h, _ := g.edges.Alloc() // reserved
		g.attach(h.Index(), s[0], s[1])
		ids[i] = EdgeID(h)
	}

	return ids, nil
}

// RemoveEdges removes one edge per (source, target) pair. Undirected pairs
// match either way round. When several edges join a pair the most recent
// one goes first, and a pair repeated in the batch takes the next one.
//
// Errors: ErrUnknownNode (with ErrInvalidIdentifier) for a dead endpoint,
// ErrUnknownEdge when a pair has no edge left to remove. The graph is
// unchanged on error.
// Complexity: O(sum of min-side degrees) to resolve, O(len(pairs)) to unlink.
func (g *Graph) RemoveEdges(pairs [][2]NodeID) error {
	taken := make(map[int]bool, len(pairs))
	slots := make([]int, len(pairs))
	for i, p := range pairs {
		su, err := g.nodeIndex("RemoveEdges", p[0])
		if err != nil {
			return fmt.Errorf("pair %d: %w", i, err)
		}
		sv, err := g.nodeIndex("RemoveEdges", p[1])
		if err != nil {
			return fmt.Errorf("pair %d: %w", i, err)
		}
		e := -1
		g.walk(su, listOut, func(h half) bool {
			if g.other(h) == sv && !taken[h.edge()] {
				e = h.edge()
			}

			return e < 0
		})
		if e < 0 {
			return fmt.Errorf("RemoveEdges: pair %d: no edge %d-%d: %w",
				i, uint64(p[0]), uint64(p[1]), ErrUnknownEdge)
		}
		taken[e] = true
		slots[i] = e
	}
	for _, e := range slots {
		g.dropEdge(e)
	}

	return nil
}

// EdgesOf lists, for each requested node, every incident edge once (a
// self-loop is not repeated). Directed graphs list outgoing edges before
// incoming ones. Read-only.
//
// Errors: ErrUnknownNode (with ErrInvalidIdentifier) for the first id that
// is not live.
// Complexity: O(sum of degrees).
func (g *Graph) EdgesOf(ids []NodeID) ([][]Edge, error) {
	return g.edgeLists("EdgesOf", ids, listOut, listIn)
}

// SourceEdges lists, for each requested node, the edges it is the source of,
// most recent first. On an undirected graph it matches EdgesOf.
//
// Errors: as EdgesOf.
func (g *Graph) SourceEdges(ids []NodeID) ([][]Edge, error) {
	return g.edgeLists("SourceEdges", ids, listOut)
}

// TargetEdges lists, for each requested node, the edges it is the target of,
// most recent first. On an undirected graph it matches EdgesOf.
//
// Errors: as EdgesOf.
func (g *Graph) TargetEdges(ids []NodeID) ([][]Edge, error) {
	if !g.cfg.Directed {
		return g.edgeLists("TargetEdges", ids, listOut)
	}

	return g.edgeLists("TargetEdges", ids, listIn)
}

// edgeLists walks the given adjacency lists of every requested node. A
// self-loop's target half is skipped when its source half is walked too.
func (g *Graph) edgeLists(op string, ids []NodeID, lists ...int) ([][]Edge, error) {
	slots := make([]int, len(ids))
	for i, id := range ids {
		n, err := g.nodeIndex(op, id)
		if err != nil {
			return nil, err
		}
		slots[i] = n
	}
	once := !g.cfg.Directed || len(lists) > 1
	out := make([][]Edge, len(ids))
	for i, n := range slots {
		rec := g.nodes.At(n)
		size := 0
		for _, l := range lists {
			size += rec.deg[l]
		}
		list := make([]Edge, 0, size)
		for _, l := range lists {
			g.walk(n, l, func(h half) bool {
				e := h.edge()
				if once && h.side() == 1 && g.edges.At(e).ends[0] == g.edges.At(e).ends[1] {
					return true
				}
				list = append(list, g.edgeAt(e))

				return true
			})
		}
		out[i] = list
	}

	return out, nil
}
