// SPDX-License-Identifier: MIT
// Package: slotgraph/slot
//
// arena.go: Arena[T]: allocation, release, growth, compaction.
//
// Layout:
//   - items[i] holds the record of slot i.
//   - meta[i] holds its generation, liveness and free-list successor.
//   - Slots [0, used) have been handed out at least once; [used, cap) are spare.
//   - The free list threads through meta[i].next and only contains slots < used.

package slot

import (
	"fmt"
	"iter"
	"math"
)

// meta is the per-slot bookkeeping kept next to the record buffer.
type meta struct {
	gen  uint32 // generation of the current (or next) occupant
	next int32  // free-list successor while free
	live bool   // slot currently occupied
}

// Arena is a growable buffer of T records addressed by generational handles.
type Arena[T any] struct {
	items []T
	meta  []meta

	used     int   // high-water mark of slots ever handed out
	freeHead int32 // head of the LIFO free list, nilIndex when empty
	free     int   // number of slots on the free list
	retired  int   // freed slots whose generation is exhausted
	live     int   // number of occupied slots

	initial  int
	growth   float64
	max      int
	genFloor uint32 // first generation for slots re-created after a shrink
}

// New creates an Arena with the given options applied over DefaultOptions.
// Complexity: O(InitialCapacity).
func New[T any](opts ...Option) *Arena[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.InitialCapacity > o.MaxCapacity {
		o.InitialCapacity = o.MaxCapacity
	}
	a := &Arena[T]{
		freeHead: nilIndex,
		initial:  o.InitialCapacity,
		growth:   o.GrowthFactor,
		max:      o.MaxCapacity,
	}
	a.items = make([]T, o.InitialCapacity)
	a.meta = make([]meta, o.InitialCapacity)
	for i := range a.meta {
		a.meta[i].next = nilIndex
	}

	return a
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int { return a.live }

// Cap returns the number of allocated slots (live, free and spare).
func (a *Arena[T]) Cap() int { return len(a.items) }

// FreeCount returns the number of recycled slots waiting on the free list.
func (a *Arena[T]) FreeCount() int { return a.free }

// Retired returns the number of slots withheld from reuse because their
// generation is exhausted.
func (a *Arena[T]) Retired() int { return a.retired }

// Used returns the high-water mark: slots [0, Used()) have been handed out.
func (a *Arena[T]) Used() int { return a.used }

// MaxCapacity returns the configured hard maximum.
func (a *Arena[T]) MaxCapacity() int { return a.max }

// Available returns how many allocations can succeed without growing.
func (a *Arena[T]) Available() int { return a.free + len(a.items) - a.used }

// Alloc reserves a slot and returns its handle.
// Reuses the most recently freed slot first, then spare capacity, then grows.
// Returns ErrCapacityExceeded when growth would pass the hard maximum; the
// arena is unchanged in that case.
// Complexity: O(1) amortized.
func (a *Arena[T]) Alloc() (Handle, error) {
	if a.freeHead != nilIndex {
		i := a.freeHead
		m := &a.meta[i]
		a.freeHead = m.next
		m.next = nilIndex
		m.live = true
		a.free--
		a.live++

		return MakeHandle(int(i), m.gen), nil
	}
	if a.used == len(a.items) {
		if err := a.grow(a.used + 1); err != nil {
			return NilHandle, err
		}
	}
	i := a.used
	a.used++
	m := &a.meta[i]
	m.live = true
	m.next = nilIndex
	a.live++

	return MakeHandle(i, m.gen), nil
}

// Free releases the slot behind h and pushes it on the free list.
// The slot generation is bumped so h (and any copy of it) becomes stale.
// A slot whose generation would wrap is retired instead: it stays off the
// free list until Compact or Clear reclaims it.
// Returns ErrInvalidHandle if h is out of range, already free, or stale.
// Complexity: O(1).
func (a *Arena[T]) Free(h Handle) error {
	i, err := a.Lookup(h)
	if err != nil {
		return err
	}
	var zero T
	a.items[i] = zero
	m := &a.meta[i]
	m.live = false
	a.live--
	m.gen++
	if m.gen == 0 {
		m.next = nilIndex
		a.retired++

		return nil
	}
	m.next = a.freeHead
	a.freeHead = int32(i)
	a.free++

	return nil
}

// Lookup validates h and returns its slot index.
// Complexity: O(1).
func (a *Arena[T]) Lookup(h Handle) (int, error) {
	i := h.Index()
	if h == NilHandle || i >= a.used {
		return -1, fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidHandle, i, a.used)
	}
	m := a.meta[i]
	if !m.live {
		return -1, fmt.Errorf("%w: slot %d is free", ErrInvalidHandle, i)
	}
	if m.gen != h.Generation() {
		return -1, fmt.Errorf("%w: slot %d generation %d, handle generation %d",
			ErrInvalidHandle, i, m.gen, h.Generation())
	}

	return i, nil
}

// Contains reports whether h refers to a live slot of the current generation.
func (a *Arena[T]) Contains(h Handle) bool {
	i := h.Index()
	if h == NilHandle || i >= a.used {
		return false
	}
	m := a.meta[i]

	return m.live && m.gen == h.Generation()
}

// Get returns a pointer to the record behind h.
// The pointer is invalidated by the next growth or compaction.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if !a.Contains(h) {
		return nil, false
	}

	return &a.items[h.Index()], true
}

// At returns a pointer to the record in slot i without liveness checks.
// Callers must only pass indices obtained from live handles.
func (a *Arena[T]) At(i int) *T { return &a.items[i] }

// LiveAt reports whether slot i is occupied.
func (a *Arena[T]) LiveAt(i int) bool {
	return i >= 0 && i < a.used && a.meta[i].live
}

// HandleAt returns the handle of the current occupant of slot i.
// The result is only meaningful when LiveAt(i) is true.
func (a *Arena[T]) HandleAt(i int) Handle { return MakeHandle(i, a.meta[i].gen) }

// All yields every live handle in ascending slot order.
// The sequence is lazy and restartable; the arena must not be mutated while it runs.
func (a *Arena[T]) All() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for i := 0; i < a.used; i++ {
			if !a.meta[i].live {
				continue
			}
			if !yield(MakeHandle(i, a.meta[i].gen)) {
				return
			}
		}
	}
}

// Reserve guarantees that n further Alloc calls succeed without growing.
// Returns ErrCapacityExceeded, leaving the arena unchanged, if that would
// pass the hard maximum.
func (a *Arena[T]) Reserve(n int) error {
	if n <= a.Available() {
		return nil
	}

	return a.grow(a.used + n - a.free)
}

// grow enlarges the buffers to at least minCap slots, applying the growth
// factor, and never beyond the hard maximum.
func (a *Arena[T]) grow(minCap int) error {
	if minCap > a.max {
		return fmt.Errorf("%w: need %d slots, max %d", ErrCapacityExceeded, minCap, a.max)
	}
	cur := len(a.items)
	next := a.initial
	if cur > 0 {
		next = int(math.Ceil(float64(cur) * a.growth))
	}
	if next < minCap {
		next = minCap
	}
	if next > a.max {
		next = a.max
	}

	items := make([]T, next)
	copy(items, a.items)
	metas := make([]meta, next)
	copy(metas, a.meta)
	for i := cur; i < next; i++ {
		metas[i] = meta{gen: a.genFloor, next: nilIndex}
	}
	a.items = items
	a.meta = metas

	return nil
}

// Compact moves live slots into the dense prefix [0, Len()), preserving their
// relative order, empties the free list and shrinks capacity to
// max(Len(), initial capacity).
//
// It returns remap with remap[old] = new slot index, or -1 for slots that were
// free. Records that do not move keep their handle; moved records get a fresh
// generation in their new slot, so every handle issued before Compact is
// either still correct or detectably stale.
// Complexity: O(used).
func (a *Arena[T]) Compact() []int32 {
	remap := make([]int32, a.used)
	dst := 0
	for src := 0; src < a.used; src++ {
		if !a.meta[src].live {
			remap[src] = nilIndex
			continue
		}
		remap[src] = int32(dst)
		if src != dst {
			a.items[dst] = a.items[src]
			a.meta[dst].live = true
			a.meta[dst].next = nilIndex
			// meta[dst].gen was bumped when dst was vacated and has not been issued.
			var zero T
			a.items[src] = zero
			a.meta[src].live = false
			a.meta[src].gen++
		}
		dst++
	}
	for i := dst; i < a.used; i++ {
		a.meta[i].live = false
		a.meta[i].next = nilIndex
	}
	a.used = dst
	a.freeHead = nilIndex
	a.free = 0
	a.retired = 0

	target := dst
	if target < a.initial {
		target = a.initial
	}
	if target < len(a.items) {
		for i := target; i < len(a.meta); i++ {
			if a.meta[i].gen > a.genFloor {
				a.genFloor = a.meta[i].gen
			}
		}
		items := make([]T, target)
		copy(items, a.items)
		metas := make([]meta, target)
		copy(metas, a.meta)
		a.items = items
		a.meta = metas
	}

	return remap
}

// Clear releases every slot and keeps the capacity.
// All previously issued handles become stale.
// Complexity: O(used).
func (a *Arena[T]) Clear() {
	var zero T
	for i := 0; i < a.used; i++ {
		if a.meta[i].live {
			a.meta[i].gen++
			a.meta[i].live = false
		}
		a.meta[i].next = nilIndex
		a.items[i] = zero
	}
	a.used = 0
	a.freeHead = nilIndex
	a.free = 0
	a.retired = 0
	a.live = 0
}

// Clone returns an independent deep copy of the arena bookkeeping.
// Records are copied by value.
func (a *Arena[T]) Clone() *Arena[T] {
	c := *a
	c.items = make([]T, len(a.items))
	copy(c.items, a.items)
	c.meta = make([]meta, len(a.meta))
	copy(c.meta, a.meta)

	return &c
}
