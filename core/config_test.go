// SPDX-License-Identifier: MIT
// Package core_test verifies Config validation and YAML loading.

package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slotgraph/core"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*core.Config)
		ok     bool
	}{
		{"defaults", func(*core.Config) {}, true},
		{"zero capacities", func(c *core.Config) { c.InitialNodeCapacity, c.InitialEdgeCapacity = 0, 0 }, true},
		{"negative node capacity", func(c *core.Config) { c.InitialNodeCapacity = -1 }, false},
		{"negative edge capacity", func(c *core.Config) { c.InitialEdgeCapacity = -1 }, false},
		{"growth one", func(c *core.Config) { c.GrowthFactor = 1 }, false},
		{"negative dims", func(c *core.Config) { c.CoordinateDims = -2 }, false},
		{"initial above max", func(c *core.Config) { c.MaxNodes = 10 }, false},
		{"initial within max", func(c *core.Config) { c.MaxEdges = 64 }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := core.DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, core.ErrInvalidConfig)
			}
		})
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := core.ParseConfig([]byte(`
directed: true
allow_self_loops: true
allow_multi_edges: false
coordinate_dims: 3
growth_factor: 1.5
max_nodes: 1000
`))
	require.NoError(t, err)
	assert.True(t, cfg.Directed)
	assert.True(t, cfg.AllowSelfLoops)
	assert.False(t, cfg.AllowMultiEdges)
	assert.Equal(t, 3, cfg.CoordinateDims)
	assert.Equal(t, 1.5, cfg.GrowthFactor)
	assert.Equal(t, 1000, cfg.MaxNodes)
	assert.Equal(t, core.DefaultNodeCapacity, cfg.InitialNodeCapacity, "unset keys keep defaults")

	empty, err := core.ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, core.DefaultConfig(), empty)

	_, err = core.ParseConfig([]byte("directd: true\n"))
	require.ErrorIs(t, err, core.ErrInvalidConfig, "unknown key")

	_, err = core.ParseConfig([]byte("growth_factor: 0.5\n"))
	require.ErrorIs(t, err, core.ErrInvalidConfig)
}

func TestLoadConfig_RoundTrip(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Directed = true
	cfg.CoordinateDims = 2
	data, err := cfg.Encode()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	got, err := core.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	_, err = core.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Directed = true
	cfg.CoordinateDims = 2
	g, err := core.NewFromConfig(cfg)
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.Equal(t, 2, g.Dims())

	cfg.GrowthFactor = 0
	_, err = core.NewFromConfig(cfg)
	require.ErrorIs(t, err, core.ErrInvalidConfig)
}
