package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// The input is deep-copied.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}, nil
}

// From2D is NewGridGraph with the default threshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is in bounds and at or above LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the (dx,dy) offsets for gg.Conn. Do not modify.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// ToGraph converts the land cells into a *core.Graph with 2-D coordinates.
// Nodes are added in row-major order at (x, y); each pair of adjacent land
// cells under gg.Conn is joined by one edge (one arc each way on a directed
// graph). opts configure the graph; coordinates are always 2-D.
//
// cells maps a row-major cell index to its node, or core.NilNode for water.
// Errors from core (capacity limits) are returned as is.
func (gg *GridGraph) ToGraph(opts ...core.GraphOption) (g *core.Graph, cells []core.NodeID, err error) {
	g = core.NewGraph(append(opts[:len(opts):len(opts)], core.WithCoordinates(2))...)
	cells = make([]core.NodeID, gg.Width*gg.Height)
	var rows [][]float64
	var land []int
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i := gg.index(x, y)
			cells[i] = core.NilNode
			if gg.IsLand(x, y) {
				land = append(land, i)
				rows = append(rows, []float64{float64(x), float64(y)})
			}
		}
	}
	ids, err := g.AddNodes(len(land), rows)
	if err != nil {
		return nil, nil, fmt.Errorf("ToGraph: %w", err)
	}
	for k, i := range land {
		cells[i] = ids[k]
	}

	directed := g.Directed()
	var pairs [][2]core.NodeID
	for _, i := range land {
		x, y := gg.Coordinate(i)
		for _, d := range gg.neighborOffsets {
			nx, ny := x+d[0], y+d[1]
			if !gg.IsLand(nx, ny) {
				continue
			}
			j := gg.index(nx, ny)
			if !directed && j < i {
				continue
			}
			pairs = append(pairs, [2]core.NodeID{cells[i], cells[j]})
		}
	}
	if _, err = g.AddEdges(pairs); err != nil {
		return nil, nil, fmt.Errorf("ToGraph: %w", err)
	}
	g.Logger().Debug("gridgraph: skeleton built",
		"width", gg.Width, "height", gg.Height, "conn", gg.Conn.String(),
		"nodes", g.NodeCount(), "edges", g.EdgeCount())

	return g, cells, nil
}
