package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slotgraph/core"
	"github.com/katalvlaran/slotgraph/gridgraph"
)

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 0}}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)
	grid[0][1] = 1
	assert.False(t, gg.IsLand(1, 0))
}

// TestInBounds checks InBounds and IsLand on a 3×2 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 1, 0},
		{1, 0, 5},
	}, gridgraph.Conn4)
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "%v", xy)
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "%v", xy)
		assert.False(t, gg.IsLand(xy[0], xy[1]), "%v", xy)
	}
	assert.True(t, gg.IsLand(2, 1))
	assert.False(t, gg.IsLand(0, 0))
	assert.Len(t, gg.NeighborOffsets(), 4)
}

// TestToGraph_Conn4 verifies node placement and orthogonal edges.
func TestToGraph_Conn4(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0}, {1, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	g, cells, err := gg.ToGraph()
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.Dims())
	assert.Equal(t, []core.NodeID{0, core.NilNode, 1, 2}, cells)
	assert.Equal(t, []float64{0, 0, 0, 1, 1, 1}, g.CoordinateArray())
	assert.Equal(t, []core.Edge{{ID: 0, Source: 0, Target: 1}, {ID: 1, Source: 1, Target: 2}}, g.EdgeList())
	assert.False(t, g.HasEdge(0, 2), "no diagonal under Conn4")
	require.NoError(t, g.Validate())
}

// TestToGraph_Conn8 verifies diagonal connectivity and directed arcs.
func TestToGraph_Conn8(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0}, {0, 1}}, gridgraph.Conn8)
	require.NoError(t, err)

	g, _, err := gg.ToGraph()
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 1))

	g, _, err = gg.ToGraph(core.WithDirected(true))
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(1, 0))
}

func TestToGraph_FullLand(t *testing.T) {
	full := [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
	gg4, _ := gridgraph.From2D(full, gridgraph.Conn4)
	gg8, _ := gridgraph.From2D(full, gridgraph.Conn8)

	g4, _, err := gg4.ToGraph()
	require.NoError(t, err)
	g8, _, err := gg8.ToGraph()
	require.NoError(t, err)
	assert.Equal(t, 12, g4.EdgeCount())
	assert.Equal(t, 20, g8.EdgeCount())

	d, _ := g8.Degree(4)
	assert.Equal(t, 8, d, "center touches every cell")
	id, ok := g8.NodeAt(2, 1)
	require.True(t, ok)
	assert.Equal(t, core.NodeID(5), id)
}

func TestToGraph_ThresholdAndLimits(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = 5
	gg, err := gridgraph.NewGridGraph([][]int{{4, 5, 9}}, opts)
	require.NoError(t, err)
	g, cells, err := gg.ToGraph()
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, core.NilNode, cells[0])

	_, _, err = gg.ToGraph(core.WithMaxNodes(1))
	require.ErrorIs(t, err, core.ErrCapacityExceeded)

	empty, _ := gridgraph.From2D([][]int{{0, 0}}, gridgraph.Conn4)
	g, _, err = empty.ToGraph()
	require.NoError(t, err)
	assert.Zero(t, g.NodeCount())
}
