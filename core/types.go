// SPDX-License-Identifier: MIT
// File: types.go
// Role: Public identifier and record types; internal node/edge slot layouts.

package core

import "github.com/katalvlaran/slotgraph/slot"

// NodeID identifies a node. Low 32 bits: slot index; high 32 bits: slot
// generation. A fresh graph issues 0, 1, 2, ... in insertion order.
type NodeID uint64

// EdgeID identifies an edge, encoded like NodeID.
type EdgeID uint64

// NilNode and NilEdge never identify a live entity.
const (
	NilNode = NodeID(slot.NilHandle)
	NilEdge = EdgeID(slot.NilHandle)
)

// Index returns the slot index encoded in id.
func (id NodeID) Index() int { return slot.Handle(id).Index() }

// Index returns the slot index encoded in id.
func (id EdgeID) Index() int { return slot.Handle(id).Index() }

// Edge is an enumerated edge with its endpoints.
// In undirected graphs Source/Target keep the order given to AddEdge.
type Edge struct {
	ID     EdgeID
	Source NodeID
	Target NodeID
}

// Stats is a point-in-time snapshot of graph size and buffer occupancy.
type Stats struct {
	Directed       bool
	Nodes          int
	Edges          int
	NodeCapacity   int
	EdgeCapacity   int
	FreeNodeSlots  int
	FreeEdgeSlots  int
	CoordinateDims int
}

// half references one half-edge: edge slot index << 1 | side.
// Side 0 is anchored at the source endpoint, side 1 at the target.
type half int64

const nilHalf half = -1

func mkHalf(e int, side int) half { return half(e<<1 | side) }

func (h half) edge() int { return int(h >> 1) }

func (h half) side() int { return int(h & 1) }

// Adjacency list selectors. Undirected graphs use only listOut.
const (
	listOut = 0
	listIn  = 1
)

// node is the node slot record: adjacency heads and per-list degree.
type node struct {
	head [2]half
	deg  [2]int
}

// halfLink is the inline doubly-linked list cell of one half-edge.
type halfLink struct {
	prev, next half
}

// edge is the edge slot record: endpoint slot indices and both half-edge cells.
type edge struct {
	ends [2]int32
	link [2]halfLink
}
