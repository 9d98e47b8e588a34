// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil   (pure/deterministic unless seeded)
//   • scale   = 1.0   (unit spacing / unit radius)
//   • origin  = (0,0)
//   • jitter  = 0.0   (exact layouts)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// Layout transform applied to every generated position.
	scale   float64
	originX float64
	originY float64
	jitter  float64
}

const (
	defaultScale  = 1.0
	defaultJitter = 0.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		scale:  defaultScale,
		jitter: defaultJitter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place maps a unit-layout point to graph coordinates.
func (c builderConfig) place(p point) []float64 {
	x, y := c.originX+c.scale*p.x, c.originY+c.scale*p.y
	if c.jitter > 0 {
		x += c.jitter * c.rng.NormFloat64()
		y += c.jitter * c.rng.NormFloat64()
	}

	return []float64{x, y}
}
