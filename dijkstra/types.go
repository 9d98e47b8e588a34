// Package dijkstra defines types and configuration options for shortest
// paths over core.Graph with non-negative edge lengths.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/slotgraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no Source option was given.
	ErrEmptySource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source id is not a live node.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates a negative or NaN edge length.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath is returned by PathTo for an unreachable destination.
	ErrNoPath = errors.New("dijkstra: no path")
)

// WeightFunc returns the length of edge e traversed from u to v.
type WeightFunc func(u, v core.NodeID, e core.EdgeID) float64

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting node (must be live).
// ReturnPath       – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance      – nodes farther than this are not settled. Default +Inf.
// InfEdgeThreshold – edges with length ≥ this are impassable. Default +Inf.
// Weight           – edge length; nil selects Euclidean length between
// endpoint coordinates, or 1 per edge on a graph without coordinates.
type Options struct {
	Ctx              context.Context
	Source           core.NodeID
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	Weight           WeightFunc
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node.
func Source(id core.NodeID) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithContext sets a context checked once per settled node.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics on a negative or NaN value.
func WithMaxDistance(limit float64) Option {
	if limit < 0 || math.IsNaN(limit) {
		panic(fmt.Sprintf("%v: %v", ErrBadMaxDistance, limit))
	}

	return func(o *Options) {
		o.MaxDistance = limit
	}
}

// WithInfEdgeThreshold marks edges with length ≥ threshold as impassable.
// Panics unless threshold > 0.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(fmt.Sprintf("%v: %v", ErrBadInfThreshold, threshold))
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithWeightFunc overrides the edge length. A nil fn keeps the default.
func WithWeightFunc(fn WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// UnitWeight counts hops.
func UnitWeight(core.NodeID, core.NodeID, core.EdgeID) float64 { return 1 }

// DefaultWeight is EuclideanWeight(g) when g has coordinates and UnitWeight
// otherwise.
func DefaultWeight(g *core.Graph) WeightFunc {
	if g.HasCoordinates() {
		return EuclideanWeight(g)
	}

	return UnitWeight
}

// EuclideanWeight measures an edge as the straight-line distance between its
// endpoint coordinates. Rows are cached per node, so the returned func is
// not safe for concurrent use and must not outlive a coordinate edit.
// An endpoint that is not live measures +Inf, which makes the edge
// impassable. A graph without coordinates measures every edge 0.
func EuclideanWeight(g *core.Graph) WeightFunc {
	if !g.HasCoordinates() {
		return func(core.NodeID, core.NodeID, core.EdgeID) float64 { return 0 }
	}
	cache := make(map[core.NodeID][]float64)
	coord := func(id core.NodeID) []float64 {
		c, ok := cache[id]
		if !ok {
			var err error
			if c, err = g.Coordinate(id); err != nil {
				c = nil
			}
			cache[id] = c
		}
		return c
	}

	return func(u, v core.NodeID, _ core.EdgeID) float64 {
		a, b := coord(u), coord(v)
		if a == nil || b == nil {
			return math.Inf(1)
		}
		var sum float64
		for i := range a {
			d := a[i] - b[i]
			sum += d * d
		}

		return math.Sqrt(sum)
	}
}

// DefaultOptions returns Options with no source, no caps and the default weight.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Source:           core.NilNode,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// PathTo rebuilds the node sequence from the source to dst using a
// predecessor map returned with WithReturnPath.
func PathTo(prev map[core.NodeID]core.NodeID, src, dst core.NodeID) ([]core.NodeID, error) {
	path := []core.NodeID{dst}
	for cur := dst; cur != src; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w from %d to %d", ErrNoPath, src, dst)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
