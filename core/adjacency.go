// SPDX-License-Identifier: MIT
// File: adjacency.go
// Role: Intrusive half-edge lists threaded through the edge arena.
//
// Half-edge h = e<<1|side lives in edge slot e. Side 0 is anchored at
// ends[0] (source), side 1 at ends[1] (target). The list a half joins:
//
//	undirected  both sides → listOut of their anchor node
//	directed    side 0 → listOut of the source, side 1 → listIn of the target
//
// Insertion is at the head, so walks run most-recent-first.

package core

// listOf returns the adjacency list a half-edge of the given side joins.
func (g *Graph) listOf(side int) int {
	if g.cfg.Directed {
		return side
	}

	return listOut
}

func (g *Graph) cell(h half) *halfLink {
	return &g.edges.At(h.edge()).link[h.side()]
}

// link inserts half (e, side) at the head of its anchor node's list. O(1).
func (g *Graph) link(e, side int) {
	rec := g.edges.At(e)
	n := g.nodes.At(int(rec.ends[side]))
	l := g.listOf(side)
	h := mkHalf(e, side)

	c := &rec.link[side]
	c.prev = nilHalf
	c.next = n.head[l]
	if c.next != nilHalf {
		g.cell(c.next).prev = h
	}
	n.head[l] = h
	n.deg[l]++
}

// unlink removes half (e, side) from its anchor node's list. O(1).
func (g *Graph) unlink(e, side int) {
	rec := g.edges.At(e)
	n := g.nodes.At(int(rec.ends[side]))
	l := g.listOf(side)

	c := &rec.link[side]
	if c.prev == nilHalf {
		n.head[l] = c.next
	} else {
		g.cell(c.prev).next = c.next
	}
	if c.next != nilHalf {
		g.cell(c.next).prev = c.prev
	}
	c.prev, c.next = nilHalf, nilHalf
	n.deg[l]--
}

// walk calls fn for every half in list l of node slot n, head first, until fn
// returns false. fn must not unlink the half it is handed.
func (g *Graph) walk(n, l int, fn func(h half) bool) {
	for h := g.nodes.At(n).head[l]; h != nilHalf; h = g.cell(h).next {
		if !fn(h) {
			return
		}
	}
}

// other returns the node slot at the far end of half h.
func (g *Graph) other(h half) int {
	return int(g.edges.At(h.edge()).ends[1-h.side()])
}

// connects reports whether some edge runs from node slot u to node slot v
// (either way round when undirected). Walks the shorter candidate list.
func (g *Graph) connects(u, v int) bool {
	lu, lv := listOut, listOut
	if g.cfg.Directed {
		lv = listIn
	}
	n, l, want := u, lu, v
	if g.nodes.At(v).deg[lv] < g.nodes.At(u).deg[lu] {
		n, l, want = v, lv, u
	}
	found := false
	g.walk(n, l, func(h half) bool {
		if g.other(h) == want {
			found = true
		}

		return !found
	})

	return found
}
