// SPDX-License-Identifier: MIT
// Package tabular_test checks table conversion in both directions.

package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slotgraph/core"
	"github.com/katalvlaran/slotgraph/tabular"
)

func TestImport(t *testing.T) {
	nodes := tabular.NodeTable{
		Keys:   []int64{100, 7, -3},
		Coords: [][]float64{{0, 0}, {1, 0}, {1, 1}},
	}
	edges := tabular.EdgeTable{Source: []int64{100, 7}, Target: []int64{7, -3}}

	g, keys, err := tabular.Import(nodes, edges)
	require.NoError(t, err)
	assert.Equal(t, map[int64]core.NodeID{100: 0, 7: 1, -3: 2}, keys)
	assert.Equal(t, 2, g.Dims())
	assert.True(t, g.HasEdge(keys[100], keys[7]))
	assert.True(t, g.HasEdge(keys[-3], keys[7]))
	c, _ := g.Coordinate(keys[-3])
	assert.Equal(t, []float64{1, 1}, c)
}

func TestImport_Errors(t *testing.T) {
	tests := []struct {
		name  string
		nodes tabular.NodeTable
		edges tabular.EdgeTable
		opts  []core.GraphOption
		want  error
	}{
		{"coords length", tabular.NodeTable{Keys: []int64{1, 2}, Coords: [][]float64{{0}}},
			tabular.EdgeTable{}, nil, tabular.ErrColumnLength},
		{"edge columns", tabular.NodeTable{Keys: []int64{1}},
			tabular.EdgeTable{Source: []int64{1}}, nil, tabular.ErrColumnLength},
		{"duplicate", tabular.NodeTable{Keys: []int64{1, 1}},
			tabular.EdgeTable{}, nil, tabular.ErrDuplicateKey},
		{"unknown source", tabular.NodeTable{Keys: []int64{1}},
			tabular.EdgeTable{Source: []int64{2}, Target: []int64{1}}, nil, tabular.ErrUnknownKey},
		{"unknown target", tabular.NodeTable{Keys: []int64{1}},
			tabular.EdgeTable{Source: []int64{1}, Target: []int64{2}}, nil, tabular.ErrUnknownKey},
		{"self-loop policy", tabular.NodeTable{Keys: []int64{1}},
			tabular.EdgeTable{Source: []int64{1}, Target: []int64{1}}, nil, core.ErrSelfLoopNotSupported},
		{"ragged coords", tabular.NodeTable{Keys: []int64{1, 2}, Coords: [][]float64{{0, 0}, {1}}},
			tabular.EdgeTable{}, nil, core.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, keys, err := tabular.Import(tc.nodes, tc.edges, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
			assert.Nil(t, keys)
		})
	}
}

func TestExport_RoundTrip(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithCoordinates(3))
	a, _ := g.AddNode(1, 2, 3)
	b, _ := g.AddNode(4, 5, 6)
	c, _ := g.AddNode(7, 8, 9)
	_, _ = g.AddEdge(a, b)
	_, _ = g.AddEdge(c, a)
	require.NoError(t, g.RemoveNode(b))

	nodes, edges := tabular.Export(g)
	assert.Equal(t, []int64{0, 1}, nodes.Keys)
	assert.Equal(t, [][]float64{{1, 2, 3}, {7, 8, 9}}, nodes.Coords)
	assert.Equal(t, tabular.EdgeTable{Source: []int64{1}, Target: []int64{0}}, edges)

	h, _, err := tabular.Import(nodes, edges, core.WithDirected(true))
	require.NoError(t, err)
	assert.Equal(t, g.CoordinateArray(), h.CoordinateArray())
	assert.True(t, h.HasEdge(1, 0))
	assert.False(t, h.HasEdge(0, 1))
}

func TestExportKeyed(t *testing.T) {
	g := core.NewGraph()
	ids, _ := g.AddNodes(3, nil)
	_, _ = g.AddEdges([][2]core.NodeID{{ids[0], ids[2]}})

	nodes, edges := tabular.ExportKeyed(g, func(id core.NodeID) int64 { return 10 * int64(id.Index()) })
	assert.Equal(t, []int64{0, 10, 20}, nodes.Keys)
	assert.Nil(t, nodes.Coords)
	assert.Equal(t, 0, nodes.Dims())
	assert.Equal(t, 1, edges.Len())
	assert.Equal(t, []int64{0}, edges.Source)
	assert.Equal(t, []int64{20}, edges.Target)
}
