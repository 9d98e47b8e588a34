// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
	"github.com/katalvlaran/slotgraph/dijkstra"
)

// ErrInvalidGraph indicates that MST algorithms require a non-nil, undirected graph.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected graph")

// ErrDisconnected indicates that no spanning tree covers every node:
// the graph is empty, or |V| > 1 and it is not connected.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrInvalidWeight indicates a NaN edge length.
var ErrInvalidWeight = errors.New("prim_kruskal: NaN edge weight")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run and how edges are weighed.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting node for Prim; core.NilNode picks the first
	// node in slot order. Unused by Kruskal.
	Root core.NodeID

	// Weight measures each edge; nil means dijkstra.DefaultWeight
	// (Euclidean with coordinates, unit otherwise).
	Weight dijkstra.WeightFunc
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting node for Prim's algorithm; Kruskal ignores it.
func WithRoot(root core.NodeID) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithWeightFunc overrides the edge length. A nil fn keeps the default.
func WithWeightFunc(fn dijkstra.WeightFunc) Option {
	return func(opts *MSTOptions) {
		if fn != nil {
			opts.Weight = fn
		}
	}
}

// DefaultOptions returns Kruskal, automatic root, default weights.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   core.NilNode,
	}
}

// Compute applies opts over DefaultOptions and runs the selected algorithm.
//
// Returns the tree edges, their total weight, and ErrUnknownMethod for an
// unrecognised Method in addition to the algorithms' own errors.
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g, cfg.Weight)
	case MethodPrim:
		return Prim(g, cfg.Root, cfg.Weight)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}

// prepare validates g and resolves the weight function.
func prepare(g *core.Graph, weight dijkstra.WeightFunc) (dijkstra.WeightFunc, error) {
	if g == nil || g.Directed() {
		return nil, ErrInvalidGraph
	}
	if g.NodeCount() == 0 {
		return nil, ErrDisconnected
	}
	if weight == nil {
		weight = dijkstra.DefaultWeight(g)
	}

	return weight, nil
}
