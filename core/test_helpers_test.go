// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures and helpers for core tests.

package core_test

import (
	"fmt"
	"iter"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slotgraph/core"
)

// Common fixture sizes.
const (
	SmallCapacity = 2
	ModelSteps    = 3000
	GrowthNodes   = 1000
)

// mustNode adds a node and fails the test on error.
func mustNode(t testing.TB, g *core.Graph, coord ...float64) core.NodeID {
	t.Helper()
	id, err := g.AddNode(coord...)
	require.NoError(t, err, "AddNode(%v)", coord)

	return id
}

// mustEdge adds an edge and fails the test on error.
func mustEdge(t testing.TB, g *core.Graph, u, v core.NodeID) core.EdgeID {
	t.Helper()
	id, err := g.AddEdge(u, v)
	require.NoError(t, err, "AddEdge(%d, %d)", u, v)

	return id
}

// mustDegree returns Degree(id) and fails the test on error.
func mustDegree(t testing.TB, g *core.Graph, id core.NodeID) int {
	t.Helper()
	d, err := g.Degree(id)
	require.NoError(t, err, "Degree(%d)", id)

	return d
}

// collect drains an adjacency iterator into parallel slices.
func collect(seq iter.Seq2[core.EdgeID, core.NodeID]) ([]core.EdgeID, []core.NodeID) {
	var es []core.EdgeID
	var ns []core.NodeID
	for e, n := range seq {
		es = append(es, e)
		ns = append(ns, n)
	}

	return es, ns
}

// neighborsOf collects Neighbors(id) and fails the test on error.
func neighborsOf(t testing.TB, g *core.Graph, id core.NodeID) []core.NodeID {
	t.Helper()
	seq, err := g.Neighbors(id)
	require.NoError(t, err)
	_, ns := collect(seq)

	return ns
}

// edgeSet indexes EdgeList() by id.
func edgeSet(g *core.Graph) map[core.EdgeID]core.Edge {
	out := make(map[core.EdgeID]core.Edge)
	for _, e := range g.EdgeList() {
		out[e.ID] = e
	}

	return out
}

// coordPairs returns the multiset of edges keyed by endpoint coordinates,
// sorted for comparison.
func coordPairs(t testing.TB, g *core.Graph) []string {
	t.Helper()
	var out []string
	for _, e := range g.EdgeList() {
		a, err := g.Coordinate(e.Source)
		require.NoError(t, err)
		b, err := g.Coordinate(e.Target)
		require.NoError(t, err)
		out = append(out, fmt.Sprintf("%v->%v", a, b))
	}
	sort.Strings(out)

	return out
}

// sortedIDs returns ids in ascending order.
func sortedIDs[T ~uint64](ids []T) []T {
	out := append([]T(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
