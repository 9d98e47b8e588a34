// SPDX-License-Identifier: MIT
// Package core_test verifies coordinate access through the graph.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slotgraph/coords"
	"github.com/katalvlaran/slotgraph/core"
)

func TestCoordinatesOf(t *testing.T) {
	g := core.NewGraph(core.WithCoordinates(2))
	a := mustNode(t, g, 1, 2)
	b := mustNode(t, g, 3, 4)

	got, err := g.CoordinatesOf([]core.NodeID{b, a, b})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 1, 2, 3, 4}, got)

	require.NoError(t, g.RemoveNode(a))
	_, err = g.CoordinatesOf([]core.NodeID{b, a})
	require.ErrorIs(t, err, core.ErrUnknownNode)

	_, err = core.NewGraph().CoordinatesOf(nil)
	require.ErrorIs(t, err, core.ErrNoCoordinates)
}

func TestCoordinatesOf_LargeBatch(t *testing.T) {
	n := coords.GatherParallelThreshold * 2
	g := core.NewGraph(core.WithCoordinates(1))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = []float64{float64(i)}
	}
	ids, err := g.AddNodes(n, rows)
	require.NoError(t, err)

	got, err := g.CoordinatesOf(ids)
	require.NoError(t, err)
	for i := range ids {
		require.Equal(t, float64(i), got[i])
	}
}

func TestSetCoordinate(t *testing.T) {
	g := core.NewGraph(core.WithCoordinates(2))
	a := mustNode(t, g, 0, 0)
	require.NoError(t, g.SetCoordinate(a, 5, 6))
	c, _ := g.Coordinate(a)
	assert.Equal(t, []float64{5, 6}, c)

	require.ErrorIs(t, g.SetCoordinate(a, 1), core.ErrDimensionMismatch)
	require.ErrorIs(t, g.SetCoordinate(core.NodeID(40), 1, 1), core.ErrUnknownNode)
	require.ErrorIs(t, core.NewGraph().SetCoordinate(0, 1), core.ErrNoCoordinates)
	_, err := core.NewGraph().Coordinate(0)
	require.ErrorIs(t, err, core.ErrNoCoordinates)
}

func TestNodeAt(t *testing.T) {
	g := core.NewGraph(core.WithCoordinates(2))
	a := mustNode(t, g, 1, 1)
	b := mustNode(t, g, 2, 2)

	id, ok := g.NodeAt(2, 2)
	require.True(t, ok)
	assert.Equal(t, b, id)

	_, ok = g.NodeAt(3, 3)
	assert.False(t, ok)
	_, ok = g.NodeAt(1)
	assert.False(t, ok, "wrong dimensionality")

	require.NoError(t, g.RemoveNode(a))
	_, ok = g.NodeAt(1, 1)
	assert.False(t, ok, "removed nodes are not found")

	c := mustNode(t, g, 0, 0) // reuses a's slot; old row must not leak
	id, ok = g.NodeAt(0, 0)
	require.True(t, ok)
	assert.Equal(t, c, id)
}

func TestCoordinateRowsFollowRemoval(t *testing.T) {
	g := core.NewGraph(core.WithCoordinates(3), core.WithNodeCapacity(1))
	ids := make([]core.NodeID, 10)
	for i := range ids {
		ids[i] = mustNode(t, g, float64(i), 0, 0)
	}
	for i := 0; i < 10; i += 2 {
		require.NoError(t, g.RemoveNode(ids[i]))
	}
	arr := g.CoordinateArray()
	require.Len(t, arr, 15)
	for k, i := 0, 1; i < 10; k, i = k+1, i+2 {
		assert.Equal(t, float64(i), arr[3*k])
	}
}
