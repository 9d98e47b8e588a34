package flow_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/slotgraph/builder"
	"github.com/katalvlaran/slotgraph/core"
	"github.com/katalvlaran/slotgraph/flow"
)

// ExampleDinic routes flow over two directed paths:
//
//	s→a(5)→t(4)
//	s→b(3)→t(6)
//
// The cut is the two bottlenecks, a→t and s→b.
func ExampleDinic() {
	g, _ := core.Build(4, nil, [][2]int{{0, 1}, {1, 3}, {0, 2}, {2, 3}}, core.WithDirected(true))
	capacity := []float64{5, 4, 3, 6}
	opts := flow.DefaultOptions()
	opts.Capacity = func(_, _ core.NodeID, e core.EdgeID) float64 { return capacity[e.Index()] }

	res, _ := flow.Dinic(context.Background(), g, 0, 3, opts)
	fmt.Println(res.Value, res.SourceSide, res.Cut)
	// Output: 7 [0 1] [1 2]
}

// ExampleEdmondsKarp counts edge-disjoint routes across a 3×4 grid.
func ExampleEdmondsKarp() {
	g, _ := builder.BuildGraph(nil, nil, builder.Grid(3, 4))
	res, _ := flow.EdmondsKarp(context.Background(), g, 0, 11, flow.DefaultOptions())
	fmt.Println(res.Value, len(res.Cut))
	// Output: 2 2
}
