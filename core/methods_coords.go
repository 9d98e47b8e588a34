// SPDX-License-Identifier: MIT
// File: methods_coords.go
// Role: Coordinate access by node id, bulk gather, exact-match lookup.

package core

import (
	"context"
	"fmt"
	"slices"
)

// Coordinate returns a copy of id's coordinate vector.
//
// Errors: ErrNoCoordinates, ErrUnknownNode (with ErrInvalidIdentifier).
func (g *Graph) Coordinate(id NodeID) ([]float64, error) {
	if g.coords == nil {
		return nil, fmt.Errorf("Coordinate: %w", ErrNoCoordinates)
	}
	n, err := g.nodeIndex("Coordinate", id)
	if err != nil {
		return nil, err
	}

	return slices.Clone(g.coords.Row(n)), nil
}

// SetCoordinate overwrites id's coordinate vector.
//
// Errors: ErrNoCoordinates, ErrUnknownNode (with ErrInvalidIdentifier),
// ErrDimensionMismatch.
func (g *Graph) SetCoordinate(id NodeID, coord ...float64) error {
	if g.coords == nil {
		return fmt.Errorf("SetCoordinate: %w", ErrNoCoordinates)
	}
	n, err := g.nodeIndex("SetCoordinate", id)
	if err != nil {
		return err
	}
	if err = g.checkCoord("SetCoordinate", coord); err != nil {
		return err
	}
	copy(g.coords.Row(n), coord)

	return nil
}

// CoordinatesOf gathers the coordinates of ids into one row-major slice:
// row i, at [i*Dims(), (i+1)*Dims()), belongs to ids[i]. Duplicates are
// allowed. Large batches are copied in parallel. Read-only.
//
// Errors: ErrNoCoordinates, ErrUnknownNode (with ErrInvalidIdentifier) for
// the first id that is not live.
// Complexity: O(len(ids)·Dims()).
func (g *Graph) CoordinatesOf(ids []NodeID) ([]float64, error) {
	if g.coords == nil {
		return nil, fmt.Errorf("CoordinatesOf: %w", ErrNoCoordinates)
	}
	rows := make([]int, len(ids))
	for i, id := range ids {
		n, err := g.nodeIndex("CoordinatesOf", id)
		if err != nil {
			return nil, err
		}
		rows[i] = n
	}
	dst := make([]float64, len(ids)*g.cfg.CoordinateDims)
	if err := g.coords.Gather(context.Background(), rows, dst); err != nil {
		return nil, fmt.Errorf("CoordinatesOf: %w", err)
	}

	return dst, nil
}

// NodeAt returns the lowest-slot live node whose coordinate equals point
// exactly. It reports false when none matches, when the graph has no
// coordinates, or when len(point) != Dims().
// Complexity: O(V·Dims()).
func (g *Graph) NodeAt(point ...float64) (NodeID, bool) {
	if g.coords == nil || len(point) != g.cfg.CoordinateDims {
		return NilNode, false
	}
	for h := range g.nodes.All() {
		if slices.Equal(g.coords.Row(h.Index()), point) {
			return NodeID(h), true
		}
	}

	return NilNode, false
}
