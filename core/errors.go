// SPDX-License-Identifier: MIT
// File: errors.go
// Role: Sentinel errors for core graph operations.
//
// Every error returned by core wraps exactly one or two of these sentinels and
// is matched with errors.Is. A rejected identifier always wraps both the
// entity class (ErrUnknownNode / ErrUnknownEdge) and ErrInvalidIdentifier.

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownNode indicates a node identifier that is not live.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrUnknownEdge indicates an edge identifier that is not live.
	ErrUnknownEdge = errors.New("core: unknown edge")

	// ErrInvalidIdentifier indicates a stale (removed or compacted) or
	// out-of-range identifier.
	ErrInvalidIdentifier = errors.New("core: invalid identifier")

	// ErrSelfLoopNotSupported indicates u == v on a graph built without self-loops.
	ErrSelfLoopNotSupported = errors.New("core: self-loop not supported")

	// ErrMultiEdgeNotSupported indicates a parallel edge on a graph built without multi-edges.
	ErrMultiEdgeNotSupported = errors.New("core: multi-edge not supported")

	// ErrCapacityExceeded indicates that growing a buffer would pass MaxNodes or MaxEdges.
	ErrCapacityExceeded = errors.New("core: capacity exceeded")

	// ErrDimensionMismatch indicates a coordinate vector whose length is not CoordinateDims.
	ErrDimensionMismatch = errors.New("core: coordinate dimension mismatch")

	// ErrNoCoordinates indicates a coordinate operation on a graph without coordinates.
	ErrNoCoordinates = errors.New("core: graph has no coordinates")

	// ErrInvalidConfig indicates a Config that fails validation.
	ErrInvalidConfig = errors.New("core: invalid config")

	// ErrInvalidArgument indicates a malformed bulk request (negative count,
	// mismatched slice lengths).
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrCorrupted indicates a structural invariant violation found by Validate.
	ErrCorrupted = errors.New("core: structural invariant violated")
)

func unknownNode(op string, id NodeID) error {
	return fmt.Errorf("%s: node %d: %w: %w", op, uint64(id), ErrUnknownNode, ErrInvalidIdentifier)
}

func unknownEdge(op string, id EdgeID) error {
	return fmt.Errorf("%s: edge %d: %w: %w", op, uint64(id), ErrUnknownEdge, ErrInvalidIdentifier)
}
