// SPDX-License-Identifier: MIT
// File: table.go
// Role: Node/edge tables and their conversion to and from core.Graph.

package tabular

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

// NodeTable is one row per node. Coords is nil for graphs without
// coordinates, otherwise len(Coords) == len(Keys).
type NodeTable struct {
	Keys   []int64
	Coords [][]float64
}

// Len returns the number of rows.
func (t NodeTable) Len() int { return len(t.Keys) }

// Dims returns the coordinate width, or 0 without coordinates.
func (t NodeTable) Dims() int {
	if len(t.Coords) == 0 {
		return 0
	}

	return len(t.Coords[0])
}

// EdgeTable is one row per edge, endpoints given by node key.
type EdgeTable struct {
	Source []int64
	Target []int64
}

// Len returns the number of rows.
func (t EdgeTable) Len() int { return len(t.Source) }

// KeyFunc assigns the external key of a node during Export.
type KeyFunc func(id core.NodeID) int64

// Import builds a graph from nodes and edges. Nodes are inserted in table
// order, so on a fresh graph row i gets NodeID(i); edges likewise. When
// nodes carries coordinates and opts do not set WithCoordinates, the
// dimensionality is taken from the first row.
//
// Errors: ErrColumnLength, ErrDuplicateKey, ErrUnknownKey, or any core.Build
// error.
func Import(nodes NodeTable, edges EdgeTable, opts ...core.GraphOption) (*core.Graph, map[int64]core.NodeID, error) {
	if nodes.Coords != nil && len(nodes.Coords) != len(nodes.Keys) {
		return nil, nil, fmt.Errorf("Import: %d keys, %d coordinate rows: %w",
			len(nodes.Keys), len(nodes.Coords), ErrColumnLength)
	}
	if len(edges.Source) != len(edges.Target) {
		return nil, nil, fmt.Errorf("Import: %d sources, %d targets: %w",
			len(edges.Source), len(edges.Target), ErrColumnLength)
	}
	pos := make(map[int64]int, len(nodes.Keys))
	for i, k := range nodes.Keys {
		if _, dup := pos[k]; dup {
			return nil, nil, fmt.Errorf("Import: row %d: key %d: %w", i, k, ErrDuplicateKey)
		}
		pos[k] = i
	}
	pairs := make([][2]int, len(edges.Source))
	for i := range pairs {
		u, ok := pos[edges.Source[i]]
		if !ok {
			return nil, nil, fmt.Errorf("Import: edge %d: source %d: %w", i, edges.Source[i], ErrUnknownKey)
		}
		v, ok := pos[edges.Target[i]]
		if !ok {
			return nil, nil, fmt.Errorf("Import: edge %d: target %d: %w", i, edges.Target[i], ErrUnknownKey)
		}
		pairs[i] = [2]int{u, v}
	}

	g, err := core.Build(len(nodes.Keys), nodes.Coords, pairs, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("Import: %w", err)
	}
	ids := g.NodeIDs()
	keys := make(map[int64]core.NodeID, len(ids))
	for k, i := range pos {
		keys[k] = ids[i]
	}

	return g, keys, nil
}

// Export returns g as tables keyed by node position (0..NodeCount-1 in
// slot order), matching core.Graph.Export.
func Export(g *core.Graph) (NodeTable, EdgeTable) {
	pos := g.PositionIndex()

	return ExportKeyed(g, func(id core.NodeID) int64 { return int64(pos[id]) })
}

// ExportKeyed returns g as tables with node keys assigned by key. Rows
// follow slot order; key should be injective or Import will reject the
// result with ErrDuplicateKey.
func ExportKeyed(g *core.Graph, key KeyFunc) (NodeTable, EdgeTable) {
	ids := g.NodeIDs()
	nodes := NodeTable{Keys: make([]int64, len(ids))}
	for i, id := range ids {
		nodes.Keys[i] = key(id)
	}
	if g.HasCoordinates() {
		d := g.Dims()
		flat := g.CoordinateArray()
		nodes.Coords = make([][]float64, len(ids))
		for i := range nodes.Coords {
			nodes.Coords[i] = flat[i*d : (i+1)*d : (i+1)*d]
		}
	}

	n := g.EdgeCount()
	edges := EdgeTable{Source: make([]int64, 0, n), Target: make([]int64, 0, n)}
	for e := range g.Edges() {
		edges.Source = append(edges.Source, key(e.Source))
		edges.Target = append(edges.Target, key(e.Target))
	}

	return nodes, edges
}
