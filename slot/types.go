// SPDX-License-Identifier: MIT
// Package: slotgraph/slot
//
// types.go: Handle encoding, sentinel errors, options and defaults.

package slot

import (
	"errors"
	"math"
)

// Sentinel errors for arena operations.
var (
	// ErrCapacityExceeded indicates that growing the arena would pass its hard maximum.
	ErrCapacityExceeded = errors.New("slot: capacity exceeded")

	// ErrInvalidHandle indicates a handle that is out of range, already free, or stale.
	ErrInvalidHandle = errors.New("slot: invalid handle")
)

// Defaults (single source of truth for zero-option behavior).
const (
	// DefaultInitialCapacity is the number of slots allocated up-front.
	DefaultInitialCapacity = 64

	// DefaultGrowthFactor multiplies the capacity on each growth step.
	DefaultGrowthFactor = 2.0

	// MaxIndex is the largest slot index an Arena can address. Free-list and
	// adjacency links are int32, so indices stay within int32 range.
	MaxIndex = math.MaxInt32 - 1
)

// nilIndex terminates intrusive free lists.
const nilIndex int32 = -1

const (
	panicGrowthFactor = "slot: WithGrowthFactor: factor must be finite and > 1"
	panicInitialCap   = "slot: WithInitialCapacity: capacity must be >= 0"
	panicMaxCap       = "slot: WithMaxCapacity: capacity must be > 0"
)

// Handle identifies one slot of one generation.
// The zero Handle is valid: index 0, generation 0.
//
// Generations are 32 bits. Free retires a slot after its 2^32-th occupant
// rather than wrap, so a stale handle never matches again through Alloc.
// Compact and Clear put retired slots back in service, so a handle that
// outlived 2^32 occupants of its slot may match again after one of them.
type Handle uint64

// NilHandle never refers to a slot.
const NilHandle Handle = math.MaxUint64

// MakeHandle packs a slot index and generation.
func MakeHandle(index int, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(uint32(index)))
}

// Index returns the slot index encoded in h.
func (h Handle) Index() int { return int(uint32(h)) }

// Generation returns the slot generation encoded in h.
func (h Handle) Generation() uint32 { return uint32(h >> 32) }

// Options holds the resolved arena configuration.
type Options struct {
	InitialCapacity int
	GrowthFactor    float64
	MaxCapacity     int
}

// Option mutates Options. Constructors panic on nonsensical values.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		InitialCapacity: DefaultInitialCapacity,
		GrowthFactor:    DefaultGrowthFactor,
		MaxCapacity:     MaxIndex + 1,
	}
}

// WithInitialCapacity sets the number of slots allocated at construction.
func WithInitialCapacity(n int) Option {
	if n < 0 {
		panic(panicInitialCap)
	}
	return func(o *Options) { o.InitialCapacity = n }
}

// WithGrowthFactor sets the geometric growth factor (> 1).
func WithGrowthFactor(f float64) Option {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 1 {
		panic(panicGrowthFactor)
	}
	return func(o *Options) { o.GrowthFactor = f }
}

// WithMaxCapacity sets the hard maximum number of slots.
// Values above MaxIndex+1 are clamped.
func WithMaxCapacity(n int) Option {
	if n <= 0 {
		panic(panicMaxCap)
	}
	if n > MaxIndex+1 {
		n = MaxIndex + 1
	}
	return func(o *Options) { o.MaxCapacity = n }
}
