package flow

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/slotgraph/core"
)

var (
	// ErrNilGraph is returned when the input graph is nil.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned when the source node is not live.
	ErrSourceNotFound = errors.New("flow: source node not found")

	// ErrSinkNotFound is returned when the sink node is not live.
	ErrSinkNotFound = errors.New("flow: sink node not found")

	// ErrSameEndpoints is returned when source and sink are the same node.
	ErrSameEndpoints = errors.New("flow: source equals sink")
)

// EdgeError is returned when an edge has a negative (or NaN) capacity.
type EdgeError struct {
	Edge     core.EdgeID
	From, To core.NodeID
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: invalid capacity on edge %d (%d→%d): %g", e.Edge, e.From, e.To, e.Cap)
}

// CapacityFunc returns the capacity of edge e stored as u→v.
type CapacityFunc func(u, v core.NodeID, e core.EdgeID) float64

// UnitCapacity gives every edge capacity 1, so the max flow counts
// edge-disjoint paths and the min cut is the edge connectivity.
func UnitCapacity(core.NodeID, core.NodeID, core.EdgeID) float64 { return 1 }

// FlowOptions configures all max-flow algorithms.
//   - Epsilon: treat capacities ≤ Epsilon as zero (default 1e-9).
//   - Capacity: edge capacity; nil means UnitCapacity.
//   - Verbose: if true, logs each augmentation at debug level on g.Logger().
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type FlowOptions struct {
	Epsilon              float64
	Capacity             CapacityFunc
	Verbose              bool
	LevelRebuildInterval int
}

const defaultEpsilon = 1e-9

// DefaultOptions returns unit capacities, Epsilon 1e-9, quiet, no forced rebuilds.
func DefaultOptions() FlowOptions {
	return FlowOptions{Epsilon: defaultEpsilon, Capacity: UnitCapacity}
}

func (o *FlowOptions) normalize() {
	if !(o.Epsilon > 0) {
		o.Epsilon = defaultEpsilon
	}
	if o.Capacity == nil {
		o.Capacity = UnitCapacity
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}

// Result is a maximum flow and the minimum cut that certifies it.
type Result struct {
	// Value is the total flow leaving the source.
	Value float64

	// Flow holds the net flow on every edge that carries any, signed in the
	// edge's stored Source→Target direction.
	Flow map[core.EdgeID]float64

	// SourceSide lists the nodes still reachable from the source in the
	// final residual network, in slot order.
	SourceSide []core.NodeID

	// Cut lists the edges leaving SourceSide, in slot order. On an
	// undirected graph an edge is cut when its endpoints are on different
	// sides. Their capacities sum to Value.
	Cut []core.EdgeID
}

var inf = math.Inf(1)
