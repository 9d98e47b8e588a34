// Package dfs implements cycle finding for directed and undirected core.Graphs.
//
// FindCycle runs a three-color DFS and stops at the first back edge. In
// undirected graphs the tree edge to the parent is skipped by edge id, so two
// parallel edges form a cycle of length 2 and a self-loop one of length 1.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

type cycleFinder struct {
	graph    *core.Graph
	directed bool
	state    map[core.NodeID]int
	path     []core.NodeID
	cycle    []core.NodeID
}

// FindCycle reports whether g contains a cycle and returns one as a node
// sequence whose last node connects back to the first. Roots are taken in
// slot order, so the witness is deterministic for a given edit history.
func FindCycle(g *core.Graph) (bool, []core.NodeID, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}
	f := &cycleFinder{
		graph:    g,
		directed: g.Directed(),
		state:    make(map[core.NodeID]int, g.NodeCount()),
	}
	for v := range g.Nodes() {
		if f.state[v] != White {
			continue
		}
		found, err := f.visit(v, core.NilEdge)
		if err != nil {
			return false, nil, fmt.Errorf("dfs: FindCycle: %w", err)
		}
		if found {
			return true, f.cycle, nil
		}
	}

	return false, nil, nil
}

// visit explores id, entered through edge via (NilEdge for roots).
func (f *cycleFinder) visit(id core.NodeID, via core.EdgeID) (bool, error) {
	f.state[id] = Gray
	f.path = append(f.path, id)

	seq, err := f.graph.Neighbors(id)
	if err != nil {
		return false, err
	}
	type step struct {
		e core.EdgeID
		v core.NodeID
	}
	var next []step
	for e, v := range seq {
		next = append(next, step{e, v})
	}
	for _, s := range next {
		if !f.directed && s.e == via {
			continue
		}
		switch f.state[s.v] {
		case Gray:
			f.cycle = f.extract(s.v)
			return true, nil
		case White:
			found, err := f.visit(s.v, s.e)
			if err != nil || found {
				return found, err
			}
		}
	}

	f.state[id] = Black
	f.path = f.path[:len(f.path)-1]

	return false, nil
}

// extract copies the stack suffix starting at v.
func (f *cycleFinder) extract(v core.NodeID) []core.NodeID {
	for i := len(f.path) - 1; i >= 0; i-- {
		if f.path[i] == v {
			return append([]core.NodeID(nil), f.path[i:]...)
		}
	}

	return nil
}
