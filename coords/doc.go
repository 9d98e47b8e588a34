// Package coords stores per-node coordinate vectors in a dense row-major
// float64 matrix that runs parallel to a slot arena.
//
// Row i of an Index belongs to slot i of the node arena. The owner keeps the
// two in lockstep: Resize after the arena grows, Compact with the arena's
// old→new remap table.
//
// Gather copies many rows into a caller buffer. Large batches are split into
// chunks and copied by an errgroup of workers; small batches run inline.
//
// Complexity:
//
//	Set, Row   O(dims)
//	Gather     O(len(rows)·dims), parallel above GatherParallelThreshold
//	Resize     O(rows·dims) when it reallocates
//
// Concurrency: Row and Gather are read-only and safe for concurrent use when
// no Set, Resize or Compact is in flight.
package coords
