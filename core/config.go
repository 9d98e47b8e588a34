// SPDX-License-Identifier: MIT
// File: config.go
// Role: Serializable graph configuration, defaults, validation, YAML loading.

package core

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/slotgraph/slot"
)

// Defaults (single source of truth for zero-option behavior).
const (
	DefaultNodeCapacity = slot.DefaultInitialCapacity
	DefaultEdgeCapacity = slot.DefaultInitialCapacity
	DefaultGrowthFactor = slot.DefaultGrowthFactor
)

// Config is the construction-time configuration of a Graph. It cannot change
// after construction.
type Config struct {
	// Directed selects the directed variant (out and in adjacency per node).
	Directed bool `yaml:"directed"`

	// AllowSelfLoops permits AddEdge(u, u).
	AllowSelfLoops bool `yaml:"allow_self_loops"`

	// AllowMultiEdges permits more than one edge between the same endpoints.
	AllowMultiEdges bool `yaml:"allow_multi_edges"`

	// InitialNodeCapacity and InitialEdgeCapacity size the arenas up-front.
	InitialNodeCapacity int `yaml:"initial_node_capacity"`
	InitialEdgeCapacity int `yaml:"initial_edge_capacity"`

	// GrowthFactor multiplies a full arena's capacity when it grows.
	GrowthFactor float64 `yaml:"growth_factor"`

	// CoordinateDims is the coordinate vector length; 0 means no coordinates.
	CoordinateDims int `yaml:"coordinate_dims"`

	// MaxNodes and MaxEdges are hard capacity limits; 0 means unlimited.
	MaxNodes int `yaml:"max_nodes"`
	MaxEdges int `yaml:"max_edges"`
}

// DefaultConfig returns an undirected graph config without self-loops, with
// multi-edges, 64-slot arenas, doubling growth and no coordinates.
func DefaultConfig() Config {
	return Config{
		AllowMultiEdges:     true,
		InitialNodeCapacity: DefaultNodeCapacity,
		InitialEdgeCapacity: DefaultEdgeCapacity,
		GrowthFactor:        DefaultGrowthFactor,
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.InitialNodeCapacity < 0:
		return fmt.Errorf("%w: initial_node_capacity %d < 0", ErrInvalidConfig, c.InitialNodeCapacity)
	case c.InitialEdgeCapacity < 0:
		return fmt.Errorf("%w: initial_edge_capacity %d < 0", ErrInvalidConfig, c.InitialEdgeCapacity)
	case math.IsNaN(c.GrowthFactor) || math.IsInf(c.GrowthFactor, 0) || c.GrowthFactor <= 1:
		return fmt.Errorf("%w: growth_factor %v must be finite and > 1", ErrInvalidConfig, c.GrowthFactor)
	case c.CoordinateDims < 0:
		return fmt.Errorf("%w: coordinate_dims %d < 0", ErrInvalidConfig, c.CoordinateDims)
	case c.MaxNodes < 0 || c.MaxNodes > slot.MaxIndex+1:
		return fmt.Errorf("%w: max_nodes %d out of range", ErrInvalidConfig, c.MaxNodes)
	case c.MaxEdges < 0 || c.MaxEdges > slot.MaxIndex+1:
		return fmt.Errorf("%w: max_edges %d out of range", ErrInvalidConfig, c.MaxEdges)
	case c.MaxNodes > 0 && c.InitialNodeCapacity > c.MaxNodes:
		return fmt.Errorf("%w: initial_node_capacity %d > max_nodes %d", ErrInvalidConfig, c.InitialNodeCapacity, c.MaxNodes)
	case c.MaxEdges > 0 && c.InitialEdgeCapacity > c.MaxEdges:
		return fmt.Errorf("%w: initial_edge_capacity %d > max_edges %d", ErrInvalidConfig, c.InitialEdgeCapacity, c.MaxEdges)
	}

	return nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Unknown keys are rejected. Empty input yields DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads a YAML file and parses it with ParseConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}

	return ParseConfig(data)
}

// Encode renders c as YAML accepted by ParseConfig.
func (c Config) Encode() ([]byte, error) {
	return yaml.Marshal(c)
}
