// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with `%w`.
//   • Constructors never panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, partition)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic step needs a *rand.Rand
// (WithSeed or WithRand): RandomSparse with 0<p<1, or any layout with jitter.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the target graph cannot hold the fixture:
// coordinates of a dimensionality other than 2.
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed wraps a core failure while emitting nodes or edges, and
// reports programmer errors such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
