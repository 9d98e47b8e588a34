// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// options.go: functional options for builder configuration.
//
// Option constructors panic on nonsensical values (programmer error);
// constructors themselves only return errors.

package builder

import "math/rand"

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithRand shares an existing RNG stream. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithScale multiplies layout distances by s. Panics unless s > 0.
func WithScale(s float64) BuilderOption {
	if !(s > 0) {
		panic("builder: WithScale(s<=0)")
	}

	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithOrigin translates every layout by (x, y).
func WithOrigin(x, y float64) BuilderOption {
	return func(c *builderConfig) {
		c.originX, c.originY = x, y
	}
}

// WithJitter adds Gaussian noise of stddev sigma to each position, drawn from
// the configured RNG. Panics on sigma < 0.
func WithJitter(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithJitter(sigma<0)")
	}

	return func(c *builderConfig) {
		c.jitter = sigma
	}
}
