// SPDX-License-Identifier: MIT
// File: guard.go
// Role: Shared-access wrapper around *core.Graph.
//
// core.Graph has no internal locking: any number of readers, or one writer.
// Graph enforces that contract with a sync.RWMutex for callers that share a
// graph between goroutines. Closures passed to View must not mutate the
// graph, and neither View nor Update closures may call back into the same
// Graph (RWMutex is not reentrant).

package guard

import (
	"errors"
	"sync"

	"github.com/katalvlaran/slotgraph/core"
)

// ErrNilGraph indicates New was given a nil graph.
var ErrNilGraph = errors.New("guard: nil graph")

// Graph serialises writers and admits concurrent readers of one core.Graph.
type Graph struct {
	mu sync.RWMutex
	g  *core.Graph
}

// New wraps g. The caller must stop using g directly.
func New(g *core.Graph) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Graph{g: g}, nil
}

// View runs fn under the read lock and returns its error.
func (s *Graph) View(fn func(g *core.Graph) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.g)
}

// Update runs fn under the write lock and returns its error.
// A failing core mutation leaves the graph unchanged, but fn's earlier
// mutations are not rolled back.
func (s *Graph) Update(fn func(g *core.Graph) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.g)
}

// AddNode is AddNode under the write lock.
func (s *Graph) AddNode(coord ...float64) (core.NodeID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.AddNode(coord...)
}

// AddEdge is AddEdge under the write lock.
func (s *Graph) AddEdge(u, v core.NodeID) (core.EdgeID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.AddEdge(u, v)
}

// RemoveNode is RemoveNode under the write lock.
func (s *Graph) RemoveNode(id core.NodeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.RemoveNode(id)
}

// RemoveEdge is RemoveEdge under the write lock.
func (s *Graph) RemoveEdge(id core.EdgeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.RemoveEdge(id)
}

// NeighborIDs copies the adjacency of id under the read lock. Lazy iterators
// are not offered here since they would outlive the lock.
func (s *Graph) NeighborIDs(id core.NodeID) ([]core.NodeID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.NeighborIDs(id)
}

// Stats snapshots the graph's size under the read lock.
func (s *Graph) Stats() core.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Stats()
}

// Snapshot returns an independent deep copy taken under the read lock.
func (s *Graph) Snapshot() *core.Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Clone()
}

// Replace swaps in g under the write lock, for example after reloading the
// graph from disk. Ids issued by the previous graph are meaningless after.
func (s *Graph) Replace(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	s.mu.Lock()
	s.g = g
	s.mu.Unlock()

	return nil
}

// Compact compacts the graph under the write lock.
func (s *Graph) Compact() core.Remap {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.Compact()
}
