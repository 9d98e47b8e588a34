// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning, clearing and capacity reservation.
// Determinism:
//   - Clone preserves every id, generation and adjacency order.
//   - Clear keeps capacity; every previously issued id becomes stale.

package core

import (
	"fmt"
	"log/slog"
)

// Clone returns a deep copy sharing nothing mutable with g. Ids issued by g
// are valid on the clone and keep denoting the same entities.
// Complexity: O(node capacity + edge capacity).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		cfg:   g.cfg,
		nodes: g.nodes.Clone(),
		edges: g.edges.Clone(),
		log:   g.log,
	}
	if g.coords != nil {
		c.coords = g.coords.Clone()
	}

	return c
}

// Clear removes every node and edge but keeps configuration and capacity.
// Complexity: O(used slots).
func (g *Graph) Clear() {
	g.nodes.Clear()
	g.edges.Clear()
	if g.coords != nil {
		g.coords.Resize(0)
		g.coords.Resize(g.nodes.Cap())
	}
	g.log.Debug("core: graph cleared")
}

// Reserve guarantees that the next nodes AddNode and edges AddEdge calls
// succeed without growing either arena.
//
// Errors: ErrCapacityExceeded if either reservation would pass its hard
// maximum; neither arena grows in that case.
func (g *Graph) Reserve(nodes, edges int) error {
	if nodes < 0 || edges < 0 {
		return fmt.Errorf("Reserve: %d nodes, %d edges: %w", nodes, edges, ErrInvalidArgument)
	}
	if limit := g.cfg.MaxNodes; limit > 0 && g.nodes.Used()-g.nodes.FreeCount()+nodes > limit {
		return fmt.Errorf("Reserve: %d nodes: %w", nodes, ErrCapacityExceeded)
	}
	if limit := g.cfg.MaxEdges; limit > 0 && g.edges.Used()-g.edges.FreeCount()+edges > limit {
		return fmt.Errorf("Reserve: %d edges: %w", edges, ErrCapacityExceeded)
	}
	prevNodes, prevEdges := g.nodes.Cap(), g.edges.Cap()
	if err := g.nodes.Reserve(nodes); err != nil {
		return fmt.Errorf("Reserve: %w: %w", ErrCapacityExceeded, err)
	}
	g.syncCoords(prevNodes)
	if err := g.edges.Reserve(edges); err != nil {
		return fmt.Errorf("Reserve: %w: %w", ErrCapacityExceeded, err)
	}
	g.logEdgeGrowth(prevEdges)
	if prevNodes != g.nodes.Cap() || prevEdges != g.edges.Cap() {
		g.log.Debug("core: reserved", slog.Int("nodes", nodes), slog.Int("edges", edges))
	}

	return nil
}
