// Package slot provides Arena, a growable buffer of fixed-size slots with
// free-list recycling and generational handles.
//
// An Arena hands out Handle values. A Handle packs the slot index (low 32
// bits) and the slot generation (high 32 bits). Freeing a slot bumps its
// generation, so a handle held across a removal is detected as stale instead
// of silently aliasing whatever reuses the slot later.
//
// Allocation policy:
//
//   - Free list first: the most recently freed slot is reused (LIFO).
//   - Spare capacity next: slots that were never handed out.
//   - Growth last: capacity is multiplied by the growth factor
//     (reallocate-and-copy). Growth fails with ErrCapacityExceeded when it
//     would pass the configured hard maximum.
//
// The Arena never shrinks on its own. Compact is the explicit operation that
// packs live slots into a dense prefix and returns the old→new index table.
//
// Complexity:
//
//	Alloc    O(1) amortized
//	Free     O(1)
//	Get      O(1)
//	Reserve  O(cap) when it grows, O(1) otherwise
//	Compact  O(used)
//
// Concurrency: an Arena is not safe for concurrent mutation. Read-only
// accessors (Get, LiveAt, All, Len) may run concurrently with each other.
package slot
