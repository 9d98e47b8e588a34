// Package builder_test verifies topology, layouts and determinism of every
// Constructor.
package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slotgraph/builder"
	"github.com/katalvlaran/slotgraph/core"
)

// pairSet maps "u-v" endpoint pairs of g to their multiplicity.
func pairSet(g *core.Graph) map[[2]core.NodeID]int {
	m := make(map[[2]core.NodeID]int)
	for _, e := range g.EdgeList() {
		m[[2]core.NodeID{e.Source, e.Target}]++
	}

	return m
}

// degrees returns Degree for each node in slot order.
func degrees(t *testing.T, g *core.Graph) []int {
	t.Helper()
	var out []int
	for _, id := range g.NodeIDs() {
		d, err := g.Degree(id)
		require.NoError(t, err)
		out = append(out, d)
	}

	return out
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		check func(t *testing.T, g *core.Graph)
	}{
		{"Path(4)", builder.Path(4), 4, 3, func(t *testing.T, g *core.Graph) {
			assert.Equal(t, []int{1, 2, 2, 1}, degrees(t, g))
			assert.Equal(t, map[[2]core.NodeID]int{{0, 1}: 1, {1, 2}: 1, {2, 3}: 1}, pairSet(g))
		}},
		{"Cycle(5)", builder.Cycle(5), 5, 5, func(t *testing.T, g *core.Graph) {
			assert.Equal(t, []int{2, 2, 2, 2, 2}, degrees(t, g))
			assert.True(t, g.HasEdge(4, 0), "closing edge")
		}},
		{"Star(5)", builder.Star(5), 5, 4, func(t *testing.T, g *core.Graph) {
			assert.Equal(t, []int{4, 1, 1, 1, 1}, degrees(t, g))
		}},
		{"Wheel(5)", builder.Wheel(5), 5, 8, func(t *testing.T, g *core.Graph) {
			assert.Equal(t, []int{3, 3, 3, 3, 4}, degrees(t, g), "hub is added last")
		}},
		{"Complete(4)", builder.Complete(4), 4, 6, func(t *testing.T, g *core.Graph) {
			assert.Equal(t, []int{3, 3, 3, 3}, degrees(t, g))
		}},
		{"Complete(1)", builder.Complete(1), 1, 0, nil},
		{"CompleteBipartite(2,3)", builder.CompleteBipartite(2, 3), 5, 6, func(t *testing.T, g *core.Graph) {
			assert.Equal(t, []int{3, 3, 2, 2, 2}, degrees(t, g))
			assert.False(t, g.HasEdge(0, 1), "no edge inside a side")
		}},
		{"Grid(2,3)", builder.Grid(2, 3), 6, 7, func(t *testing.T, g *core.Graph) {
			assert.Equal(t, []int{2, 3, 2, 2, 3, 2}, degrees(t, g))
			assert.True(t, g.HasEdge(1, 4), "bottom neighbor")
		}},
		{"RandomSparse(6,1)", builder.RandomSparse(6, 1), 6, 15, nil},
		{"RandomSparse(6,0)", builder.RandomSparse(6, 0), 6, 0, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			require.NoError(t, g.Validate())
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_DirectedMirroring(t *testing.T) {
	t.Parallel()
	directed := []core.GraphOption{core.WithDirected(true)}

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantE int
	}{
		{"Path(4) forward only", builder.Path(4), 3},
		{"Cycle(4) forward only", builder.Cycle(4), 4},
		{"Star(4) mirrored", builder.Star(4), 6},
		{"Wheel(5) ring forward, spokes mirrored", builder.Wheel(5), 4 + 8},
		{"Complete(3) mirrored", builder.Complete(3), 6},
		{"CompleteBipartite(1,2) mirrored", builder.CompleteBipartite(1, 2), 4},
		{"Grid(2,2) mirrored", builder.Grid(2, 2), 8},
		{"RandomSparse(3,1) ordered pairs", builder.RandomSparse(3, 1), 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(directed, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantE, g.EdgeCount())
		})
	}

	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true), core.WithSelfLoops(true)}, nil,
		builder.RandomSparse(3, 1))
	require.NoError(t, err)
	assert.Equal(t, 9, g.EdgeCount(), "loops allowed")
}

func TestBuilders_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,1)", builder.CompleteBipartite(0, 1), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(3,1.5)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(3,NaN)", builder.RandomSparse(3, math.NaN()), builder.ErrInvalidProbability},
		{"RandomSparse without rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}

	require.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)

	_, err := builder.BuildGraph([]core.GraphOption{core.WithCoordinates(3)}, nil, builder.Path(3))
	require.ErrorIs(t, err, builder.ErrUnsupportedGraphMode)

	_, err = builder.BuildGraph([]core.GraphOption{core.WithCoordinates(2)},
		[]builder.BuilderOption{builder.WithJitter(0.1)}, builder.Path(3))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph([]core.GraphOption{core.WithMultiEdges(false)}, nil,
		builder.Path(3), builder.Path(3))
	require.NoError(t, err, "separate node batches never collide")

	_, err = builder.BuildGraph([]core.GraphOption{core.WithMaxNodes(3)}, nil, builder.Path(4))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.ErrorIs(t, err, core.ErrCapacityExceeded)
}

func TestBuilders_Layouts(t *testing.T) {
	t.Parallel()
	coords2 := []core.GraphOption{core.WithCoordinates(2)}

	g, err := builder.BuildGraph(coords2, []builder.BuilderOption{builder.WithScale(2), builder.WithOrigin(1, 1)},
		builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 3, 1, 5, 1}, g.CoordinateArray())

	g, err = builder.BuildGraph(coords2, nil, builder.Grid(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 0, 0, 1, 1, 1}, g.CoordinateArray())

	g, err = builder.BuildGraph(coords2, nil, builder.Star(5))
	require.NoError(t, err)
	hub, _ := g.Coordinate(0)
	assert.Equal(t, []float64{0, 0}, hub)
	for _, id := range g.NodeIDs()[1:] {
		c, _ := g.Coordinate(id)
		assert.InDelta(t, 1.0, math.Hypot(c[0], c[1]), 1e-12, "leaf on unit circle")
	}
	leaf2, _ := g.Coordinate(2)
	assert.InDelta(t, 0.0, leaf2[0], 1e-12)
	assert.InDelta(t, 1.0, leaf2[1], 1e-12, "quarter turn")

	g, err = builder.BuildGraph(coords2, nil, builder.CompleteBipartite(1, 2))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 0, 1, 1}, g.CoordinateArray())
}

func TestBuilders_Determinism(t *testing.T) {
	t.Parallel()
	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph([]core.GraphOption{core.WithCoordinates(2)},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithJitter(0.01)},
			builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g
	}
	a, b := build(7), build(7)
	assert.Equal(t, a.EdgeList(), b.EdgeList())
	assert.Equal(t, a.CoordinateArray(), b.CoordinateArray())

	c := build(8)
	assert.NotEqual(t, a.CoordinateArray(), c.CoordinateArray())
}

func TestApply_Composes(t *testing.T) {
	t.Parallel()
	g := core.NewGraph()
	first, _ := g.AddNode()

	require.NoError(t, builder.Apply(g, nil, builder.Path(2), builder.Cycle(3)))
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
	d, _ := g.Degree(first)
	assert.Zero(t, d, "existing content is untouched")
	assert.True(t, g.HasEdge(1, 2), "path took the next ids")
	assert.True(t, g.HasEdge(5, 3), "cycle closes over its own batch")
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithScale(0) })
	assert.Panics(t, func() { builder.WithJitter(-1) })
}
