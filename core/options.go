// SPDX-License-Identifier: MIT
// File: options.go
// Role: Functional options for NewGraph.
//
// Option constructors panic on nonsensical values: those are programmer
// errors, not runtime conditions. Use NewFromConfig to get an error instead.

package core

import (
	"log/slog"
	"math"
)

const (
	panicCapacity     = "core: capacity must be >= 0"
	panicGrowthFactor = "core: WithGrowthFactor: factor must be finite and > 1"
	panicDims         = "core: WithCoordinates: dims must be > 0"
	panicNilLogger    = "core: WithLogger: logger is nil"
)

// settings collects option values before the Graph is built.
type settings struct {
	cfg Config
	log *slog.Logger
}

// GraphOption configures a Graph before creation.
type GraphOption func(s *settings)

// WithDirected selects the directed (true) or undirected (false) variant.
func WithDirected(directed bool) GraphOption {
	return func(s *settings) { s.cfg.Directed = directed }
}

// WithSelfLoops permits or rejects AddEdge(u, u).
func WithSelfLoops(allow bool) GraphOption {
	return func(s *settings) { s.cfg.AllowSelfLoops = allow }
}

// WithMultiEdges permits or rejects parallel edges.
func WithMultiEdges(allow bool) GraphOption {
	return func(s *settings) { s.cfg.AllowMultiEdges = allow }
}

// WithNodeCapacity sets the initial node arena size.
func WithNodeCapacity(n int) GraphOption {
	if n < 0 {
		panic(panicCapacity)
	}
	return func(s *settings) { s.cfg.InitialNodeCapacity = n }
}

// WithEdgeCapacity sets the initial edge arena size.
func WithEdgeCapacity(n int) GraphOption {
	if n < 0 {
		panic(panicCapacity)
	}
	return func(s *settings) { s.cfg.InitialEdgeCapacity = n }
}

// WithGrowthFactor sets the geometric growth factor of both arenas.
func WithGrowthFactor(f float64) GraphOption {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 1 {
		panic(panicGrowthFactor)
	}
	return func(s *settings) { s.cfg.GrowthFactor = f }
}

// WithCoordinates makes the graph coordinate-bearing with dims-length vectors.
func WithCoordinates(dims int) GraphOption {
	if dims <= 0 {
		panic(panicDims)
	}
	return func(s *settings) { s.cfg.CoordinateDims = dims }
}

// WithMaxNodes sets a hard limit on node slots; 0 means unlimited.
func WithMaxNodes(n int) GraphOption {
	if n < 0 {
		panic(panicCapacity)
	}
	return func(s *settings) { s.cfg.MaxNodes = n }
}

// WithMaxEdges sets a hard limit on edge slots; 0 means unlimited.
func WithMaxEdges(n int) GraphOption {
	if n < 0 {
		panic(panicCapacity)
	}
	return func(s *settings) { s.cfg.MaxEdges = n }
}

// WithConfig replaces every configuration field at once.
// Panics if cfg does not validate.
func WithConfig(cfg Config) GraphOption {
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	return func(s *settings) { s.cfg = cfg }
}

// WithLogger sets the logger for growth and compaction events.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) GraphOption {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(s *settings) { s.log = l }
}
