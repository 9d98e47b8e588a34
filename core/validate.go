// SPDX-License-Identifier: MIT
// File: validate.go
// Role: Structural self-check of arenas and adjacency lists.

package core

import "fmt"

// Validate walks every adjacency list and checks that:
//   - every half-edge belongs to a live edge anchored at the walking node,
//   - prev links mirror next links and lists are acyclic,
//   - per-list degree counters match list lengths,
//   - every live edge contributes exactly its two half-edges,
//   - the coordinate matrix covers the node arena.
//
// It returns nil or an error wrapping ErrCorrupted. Intended for tests and
// debugging; the graph never needs it to stay consistent.
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	limit := 2 * g.edges.Len()
	seen := 0
	for id := range g.Nodes() {
		n := id.Index()
		rec := g.nodes.At(n)
		if !g.cfg.Directed && (rec.head[listIn] != nilHalf || rec.deg[listIn] != 0) {
			return fmt.Errorf("%w: undirected node %d has an in list", ErrCorrupted, uint64(id))
		}
		for l := range rec.head {
			count, prev := 0, nilHalf
			for h := rec.head[l]; h != nilHalf; h = g.cell(h).next {
				e := h.edge()
				if !g.edges.LiveAt(e) {
					return fmt.Errorf("%w: node %d list %d references free edge slot %d", ErrCorrupted, uint64(id), l, e)
				}
				if int(g.edges.At(e).ends[h.side()]) != n || g.listOf(h.side()) != l {
					return fmt.Errorf("%w: half %d misplaced in node %d list %d", ErrCorrupted, h, uint64(id), l)
				}
				if g.cell(h).prev != prev {
					return fmt.Errorf("%w: half %d prev link broken", ErrCorrupted, h)
				}
				if !g.nodes.LiveAt(g.other(h)) {
					return fmt.Errorf("%w: edge slot %d reaches free node slot %d", ErrCorrupted, e, g.other(h))
				}
				count++
				seen++
				if seen > limit {
					return fmt.Errorf("%w: more half-edges than 2×%d edges (cycle?)", ErrCorrupted, g.edges.Len())
				}
				prev = h
			}
			if count != rec.deg[l] {
				return fmt.Errorf("%w: node %d list %d has %d halves, degree says %d", ErrCorrupted, uint64(id), l, count, rec.deg[l])
			}
		}
	}
	if seen != limit {
		return fmt.Errorf("%w: %d half-edges linked, want %d", ErrCorrupted, seen, limit)
	}
	if g.coords != nil && g.coords.Rows() < g.nodes.Cap() {
		return fmt.Errorf("%w: %d coordinate rows for %d node slots", ErrCorrupted, g.coords.Rows(), g.nodes.Cap())
	}

	return nil
}
