// SPDX-License-Identifier: MIT
// Package: slotgraph/coords
//
// index.go: Index: dense coordinate rows, growth in lockstep, batch gather.

package coords

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Sentinel errors for coordinate access.
var (
	// ErrDimensionMismatch indicates a vector whose length is not Dims().
	ErrDimensionMismatch = errors.New("coords: dimension mismatch")

	// ErrRowOutOfRange indicates a row outside [0, Rows()).
	ErrRowOutOfRange = errors.New("coords: row out of range")
)

// GatherParallelThreshold is the batch size above which Gather fans out.
const GatherParallelThreshold = 4096

// gatherChunk is the number of rows each Gather worker copies.
const gatherChunk = 1024

// Index is a rows×dims matrix of float64 stored row-major.
type Index struct {
	dims int
	rows int
	data []float64
}

// New returns an Index with dims columns and room for rows rows.
// Panics if dims <= 0 or rows < 0.
func New(dims, rows int) *Index {
	if dims <= 0 {
		panic("coords: New: dims must be > 0")
	}
	if rows < 0 {
		panic("coords: New: rows must be >= 0")
	}

	return &Index{dims: dims, rows: rows, data: make([]float64, dims*rows)}
}

// Dims returns the vector length.
func (x *Index) Dims() int { return x.dims }

// Rows returns the number of addressable rows.
func (x *Index) Rows() int { return x.rows }

// Resize changes the number of rows, preserving the common prefix.
// New rows are zero.
func (x *Index) Resize(rows int) {
	if rows == x.rows {
		return
	}
	n := rows * x.dims
	if n <= cap(x.data) && rows < x.rows {
		clear(x.data[n:])
		x.data = x.data[:n]
	} else {
		data := make([]float64, n)
		copy(data, x.data)
		x.data = data
	}
	x.rows = rows
}

// Set copies vec into row.
func (x *Index) Set(row int, vec []float64) error {
	if len(vec) != x.dims {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(vec), x.dims)
	}
	if row < 0 || row >= x.rows {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrRowOutOfRange, row, x.rows)
	}
	copy(x.data[row*x.dims:], vec)

	return nil
}

// Row returns a view of row. The slice aliases internal storage and is
// invalidated by Resize or Compact; callers that keep it must copy.
// Panics if row is out of range.
func (x *Index) Row(row int) []float64 {
	off := row * x.dims

	return x.data[off : off+x.dims : off+x.dims]
}

// Zero clears row.
func (x *Index) Zero(row int) {
	clear(x.Row(row))
}

// Gather copies the given rows into dst, row i of the result at
// dst[i*Dims():(i+1)*Dims()]. dst must hold len(rows)*Dims() values.
func (x *Index) Gather(ctx context.Context, rows []int, dst []float64) error {
	if len(dst) != len(rows)*x.dims {
		return fmt.Errorf("%w: dst holds %d values, need %d", ErrDimensionMismatch, len(dst), len(rows)*x.dims)
	}
	if len(rows) < GatherParallelThreshold {
		return x.gatherRange(rows, dst, 0, len(rows))
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for lo := 0; lo < len(rows); lo += gatherChunk {
		hi := min(lo+gatherChunk, len(rows))
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			return x.gatherRange(rows, dst, lo, hi)
		})
	}

	return g.Wait()
}

func (x *Index) gatherRange(rows []int, dst []float64, lo, hi int) error {
	d := x.dims
	for i := lo; i < hi; i++ {
		r := rows[i]
		if r < 0 || r >= x.rows {
			return fmt.Errorf("%w: %d not in [0,%d)", ErrRowOutOfRange, r, x.rows)
		}
		copy(dst[i*d:(i+1)*d], x.data[r*d:(r+1)*d])
	}

	return nil
}

// Compact moves row old to row remap[old] for every non-negative entry and
// resizes to rows. remap must be ascending on its non-negative entries, which
// is what slot.Arena.Compact returns.
func (x *Index) Compact(remap []int32, rows int) {
	d := x.dims
	for old, nw := range remap {
		if nw < 0 || int(nw) == old {
			continue
		}
		copy(x.data[int(nw)*d:(int(nw)+1)*d], x.data[old*d:(old+1)*d])
	}
	if rows < x.rows {
		data := make([]float64, rows*d)
		copy(data, x.data)
		x.data = data
		x.rows = rows
	} else {
		x.Resize(rows)
	}
}

// Clone returns an independent copy.
func (x *Index) Clone() *Index {
	c := &Index{dims: x.dims, rows: x.rows, data: make([]float64, len(x.data))}
	copy(c.data, x.data)

	return c
}
