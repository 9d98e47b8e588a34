// SPDX-License-Identifier: MIT
// Package core_test verifies bulk construction, batch mutation and export.

package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slotgraph/core"
)

func TestBuild_InsertionOrderIDs(t *testing.T) {
	coords := [][]float64{{0, 0}, {1, 0}, {1, 1}}
	g, err := core.Build(3, coords, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Dims(), "dims inferred from the rows")
	assert.Equal(t, []core.NodeID{0, 1, 2}, g.NodeIDs())
	assert.Equal(t, []core.Edge{
		{ID: 0, Source: 0, Target: 1},
		{ID: 1, Source: 1, Target: 2},
		{ID: 2, Source: 2, Target: 0},
	}, g.EdgeList())
	assert.Equal(t, []float64{0, 0, 1, 0, 1, 1}, g.CoordinateArray())
	require.NoError(t, g.Validate())
}

func TestBuild_Errors(t *testing.T) {
	_, err := core.Build(-1, nil, nil)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = core.Build(2, [][]float64{{1}}, nil)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = core.Build(2, [][]float64{{1}, {1, 2}}, nil)
	require.ErrorIs(t, err, core.ErrDimensionMismatch)

	_, err = core.Build(2, nil, [][2]int{{0, 2}})
	require.ErrorIs(t, err, core.ErrUnknownNode)

	_, err = core.Build(1, nil, [][2]int{{0, 0}})
	require.ErrorIs(t, err, core.ErrSelfLoopNotSupported)

	_, err = core.Build(2, nil, [][2]int{{0, 1}, {1, 0}}, core.WithMultiEdges(false))
	require.ErrorIs(t, err, core.ErrMultiEdgeNotSupported)

	_, err = core.Build(5, nil, nil, core.WithMaxNodes(4), core.WithNodeCapacity(1))
	require.ErrorIs(t, err, core.ErrCapacityExceeded)

	_, err = core.Build(2, nil, nil, core.WithCoordinates(2))
	require.ErrorIs(t, err, core.ErrDimensionMismatch, "coordinate graph needs rows")
}

func TestAddNodes_AllOrNothing(t *testing.T) {
	g := core.NewGraph(core.WithCoordinates(2))
	_, err := g.AddNodes(2, [][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, core.ErrDimensionMismatch)
	assert.Equal(t, 0, g.NodeCount())

	ids, err := g.AddNodes(2, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1}, ids)

	capped := core.NewGraph(core.WithNodeCapacity(1), core.WithMaxNodes(2))
	_, err = capped.AddNodes(3, nil)
	require.ErrorIs(t, err, core.ErrCapacityExceeded)
	assert.Equal(t, 0, capped.NodeCount())
}

func TestAddEdges_AllOrNothing(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(false))
	ids, err := g.AddNodes(3, nil)
	require.NoError(t, err)

	_, err = g.AddEdges([][2]core.NodeID{{ids[0], ids[1]}, {ids[1], ids[0]}})
	require.ErrorIs(t, err, core.ErrMultiEdgeNotSupported, "repeat inside the batch")
	assert.Equal(t, 0, g.EdgeCount())

	_, err = g.AddEdges([][2]core.NodeID{{ids[0], ids[1]}, {ids[2], core.NodeID(77)}})
	require.ErrorIs(t, err, core.ErrUnknownNode)
	assert.Equal(t, 0, g.EdgeCount())

	es, err := g.AddEdges([][2]core.NodeID{{ids[0], ids[1]}, {ids[1], ids[2]}})
	require.NoError(t, err)
	assert.Len(t, es, 2)
	assert.Equal(t, 2, mustDegree(t, g, ids[1]))

	capped := core.NewGraph(core.WithEdgeCapacity(1), core.WithMaxEdges(1))
	n, _ := capped.AddNodes(2, nil)
	_, err = capped.AddEdges([][2]core.NodeID{{n[0], n[1]}, {n[1], n[0]}})
	require.ErrorIs(t, err, core.ErrCapacityExceeded)
	assert.Equal(t, 0, capped.EdgeCount())
}

func TestEdgesOf(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	ids, _ := g.AddNodes(3, nil)
	e01 := mustEdge(t, g, ids[0], ids[1])
	e20 := mustEdge(t, g, ids[2], ids[0])

	lists, err := g.EdgesOf([]core.NodeID{ids[0], ids[1], ids[0]})
	require.NoError(t, err)
	require.Len(t, lists, 3)
	assert.Equal(t, []core.Edge{
		{ID: e01, Source: ids[0], Target: ids[1]},
		{ID: e20, Source: ids[2], Target: ids[0]},
	}, lists[0], "outgoing before incoming")
	assert.Equal(t, []core.Edge{{ID: e01, Source: ids[0], Target: ids[1]}}, lists[1])
	assert.Equal(t, lists[0], lists[2])

	_, err = g.EdgesOf([]core.NodeID{core.NodeID(9)})
	require.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestRemoveEdges_AllOrNothing(t *testing.T) {
	g := core.NewGraph()
	ids, _ := g.AddNodes(4, nil)
	e01 := mustEdge(t, g, ids[0], ids[1])
	e12 := mustEdge(t, g, ids[1], ids[2])
	e23 := mustEdge(t, g, ids[2], ids[3])

	err := g.RemoveEdges([][2]core.NodeID{{ids[0], ids[1]}, {ids[0], ids[3]}})
	require.ErrorIs(t, err, core.ErrUnknownEdge, "second pair has no edge")
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdgeID(e01), "first pair rolled back")

	err = g.RemoveEdges([][2]core.NodeID{{ids[1], ids[2]}, {ids[2], core.NodeID(99)}})
	require.ErrorIs(t, err, core.ErrUnknownNode)
	require.ErrorIs(t, err, core.ErrInvalidIdentifier)
	assert.Equal(t, 3, g.EdgeCount())

	err = g.RemoveEdges([][2]core.NodeID{{ids[1], ids[0]}, {ids[3], ids[2]}})
	require.NoError(t, err, "undirected pairs match either way round")
	assert.False(t, g.HasEdgeID(e01))
	assert.False(t, g.HasEdgeID(e23))
	assert.True(t, g.HasEdgeID(e12))
	assert.Equal(t, 0, mustDegree(t, g, ids[0]))
	assert.Equal(t, 1, mustDegree(t, g, ids[1]))
	require.NoError(t, g.Validate())
}

func TestRemoveEdges_MultiEdges(t *testing.T) {
	g := core.NewGraph(core.WithSelfLoops(true))
	ids, _ := g.AddNodes(2, nil)
	a := mustEdge(t, g, ids[0], ids[1])
	b := mustEdge(t, g, ids[0], ids[1])
	c := mustEdge(t, g, ids[1], ids[0])
	loop := mustEdge(t, g, ids[0], ids[0])

	require.NoError(t, g.RemoveEdges([][2]core.NodeID{{ids[0], ids[1]}}))
	assert.False(t, g.HasEdgeID(c), "most recent first")
	assert.True(t, g.HasEdgeID(a))
	assert.True(t, g.HasEdgeID(b))

	require.NoError(t, g.RemoveEdges([][2]core.NodeID{{ids[0], ids[1]}, {ids[1], ids[0]}}),
		"a repeated pair takes the next edge")
	assert.False(t, g.HasEdgeID(a))
	assert.False(t, g.HasEdgeID(b))

	err := g.RemoveEdges([][2]core.NodeID{{ids[0], ids[0]}, {ids[0], ids[0]}})
	require.ErrorIs(t, err, core.ErrUnknownEdge, "one loop, not two")
	assert.True(t, g.HasEdgeID(loop))

	require.NoError(t, g.RemoveEdges([][2]core.NodeID{{ids[0], ids[0]}}))
	assert.Equal(t, 0, g.EdgeCount())
	require.NoError(t, g.Validate())
}

func TestRemoveEdges_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	ids, _ := g.AddNodes(2, nil)
	e01 := mustEdge(t, g, ids[0], ids[1])
	e10 := mustEdge(t, g, ids[1], ids[0])

	require.NoError(t, g.RemoveEdges([][2]core.NodeID{{ids[0], ids[1]}}))
	assert.False(t, g.HasEdgeID(e01))
	assert.True(t, g.HasEdgeID(e10), "direction matters")

	err := g.RemoveEdges([][2]core.NodeID{{ids[0], ids[1]}})
	require.ErrorIs(t, err, core.ErrUnknownEdge)
	require.NoError(t, g.Validate())
}

func TestSourceTargetEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithSelfLoops(true))
	ids, _ := g.AddNodes(3, nil)
	e01 := mustEdge(t, g, ids[0], ids[1])
	e20 := mustEdge(t, g, ids[2], ids[0])
	e02 := mustEdge(t, g, ids[0], ids[2])
	loop := mustEdge(t, g, ids[0], ids[0])

	src, err := g.SourceEdges([]core.NodeID{ids[0], ids[1]})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{ID: loop, Source: ids[0], Target: ids[0]},
		{ID: e02, Source: ids[0], Target: ids[2]},
		{ID: e01, Source: ids[0], Target: ids[1]},
	}, src[0])
	assert.Empty(t, src[1])

	dst, err := g.TargetEdges([]core.NodeID{ids[0], ids[1]})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{ID: loop, Source: ids[0], Target: ids[0]},
		{ID: e20, Source: ids[2], Target: ids[0]},
	}, dst[0])
	assert.Equal(t, []core.Edge{{ID: e01, Source: ids[0], Target: ids[1]}}, dst[1])

	all, err := g.EdgesOf([]core.NodeID{ids[0]})
	require.NoError(t, err)
	assert.Len(t, all[0], 4, "the loop is listed once")

	_, err = g.TargetEdges([]core.NodeID{core.NodeID(42)})
	require.ErrorIs(t, err, core.ErrUnknownNode)

	u := core.NewGraph()
	n, _ := u.AddNodes(2, nil)
	e := mustEdge(t, u, n[0], n[1])
	want := [][]core.Edge{{{ID: e, Source: n[0], Target: n[1]}}, {{ID: e, Source: n[0], Target: n[1]}}}
	src, err = u.SourceEdges(n)
	require.NoError(t, err)
	assert.Equal(t, want, src)
	dst, err = u.TargetEdges(n)
	require.NoError(t, err)
	assert.Equal(t, want, dst)
}

// TestExportBuild_RoundTrip: export after random edits, rebuild, and compare
// coordinates and the endpoint-pair multiset by coordinate.
func TestExportBuild_RoundTrip(t *testing.T) {
	for _, directed := range []bool{false, true} {
		r := rand.New(rand.NewSource(3))
		g := core.NewGraph(core.WithDirected(directed), core.WithSelfLoops(true), core.WithCoordinates(2))
		var live []core.NodeID
		for i := 0; i < 200; i++ {
			live = append(live, mustNode(t, g, float64(i), float64(i%7)))
		}
		for i := 0; i < 600; i++ {
			mustEdge(t, g, live[r.Intn(len(live))], live[r.Intn(len(live))])
		}
		for i := 0; i < 40; i++ {
			j := r.Intn(len(live))
			require.NoError(t, g.RemoveNode(live[j]))
			live = append(live[:j], live[j+1:]...)
		}

		nodes, rows, pairs := g.Export()
		h, err := core.Build(nodes, rows, pairs, core.WithDirected(directed), core.WithSelfLoops(true))
		require.NoError(t, err)

		assert.Equal(t, g.CoordinateArray(), h.CoordinateArray())
		assert.Equal(t, coordPairs(t, g), coordPairs(t, h))
		assert.Equal(t, g.NodeCount(), h.NodeCount())
		assert.Equal(t, g.EdgeCount(), h.EdgeCount())
		require.NoError(t, h.Validate())
	}
}

func TestPositionIndex(t *testing.T) {
	g := core.NewGraph()
	ids, _ := g.AddNodes(4, nil)
	require.NoError(t, g.RemoveNode(ids[1]))
	pos := g.PositionIndex()
	assert.Equal(t, map[core.NodeID]int{ids[0]: 0, ids[2]: 1, ids[3]: 2}, pos)
}
