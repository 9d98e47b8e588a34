// SPDX-License-Identifier: MIT
// Package coords_test verifies coordinate storage, resize, compaction and gather.

package coords_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slotgraph/coords"
)

func TestIndex_SetRow(t *testing.T) {
	x := coords.New(3, 2)
	require.NoError(t, x.Set(1, []float64{1, 2, 3}))
	assert.Equal(t, []float64{1, 2, 3}, x.Row(1))
	assert.Equal(t, []float64{0, 0, 0}, x.Row(0))

	require.ErrorIs(t, x.Set(0, []float64{1, 2}), coords.ErrDimensionMismatch)
	require.ErrorIs(t, x.Set(2, []float64{1, 2, 3}), coords.ErrRowOutOfRange)

	x.Zero(1)
	assert.Equal(t, []float64{0, 0, 0}, x.Row(1))
}

func TestIndex_RowViewIsCapped(t *testing.T) {
	x := coords.New(2, 3)
	r := x.Row(0)
	r = append(r, 99) // must not spill into row 1
	_ = r
	assert.Equal(t, []float64{0, 0}, x.Row(1))
}

func TestIndex_ResizePreserves(t *testing.T) {
	x := coords.New(2, 1)
	require.NoError(t, x.Set(0, []float64{4, 5}))
	x.Resize(10)
	assert.Equal(t, 10, x.Rows())
	assert.Equal(t, []float64{4, 5}, x.Row(0))
	assert.Equal(t, []float64{0, 0}, x.Row(9))

	x.Resize(1)
	assert.Equal(t, 1, x.Rows())
	assert.Equal(t, []float64{4, 5}, x.Row(0))
	x.Resize(2)
	assert.Equal(t, []float64{0, 0}, x.Row(1), "regrown rows start at zero")
}

func TestIndex_Compact(t *testing.T) {
	x := coords.New(1, 5)
	for i := 0; i < 5; i++ {
		require.NoError(t, x.Set(i, []float64{float64(i)}))
	}
	x.Compact([]int32{-1, 0, -1, 1, 2}, 3)
	assert.Equal(t, 3, x.Rows())
	assert.Equal(t, []float64{1}, x.Row(0))
	assert.Equal(t, []float64{3}, x.Row(1))
	assert.Equal(t, []float64{4}, x.Row(2))
}

func TestIndex_GatherSmallAndLarge(t *testing.T) {
	for _, n := range []int{0, 5, coords.GatherParallelThreshold + 3} {
		x := coords.New(2, n)
		rows := make([]int, n)
		for i := 0; i < n; i++ {
			require.NoError(t, x.Set(i, []float64{float64(i), float64(-i)}))
			rows[i] = n - 1 - i
		}
		dst := make([]float64, 2*n)
		require.NoError(t, x.Gather(context.Background(), rows, dst))
		for i, r := range rows {
			assert.Equal(t, float64(r), dst[2*i])
			assert.Equal(t, float64(-r), dst[2*i+1])
		}
	}
}

func TestIndex_GatherErrors(t *testing.T) {
	x := coords.New(2, 4)
	require.ErrorIs(t, x.Gather(context.Background(), []int{0}, make([]float64, 3)), coords.ErrDimensionMismatch)
	require.ErrorIs(t, x.Gather(context.Background(), []int{7}, make([]float64, 2)), coords.ErrRowOutOfRange)

	big := coords.New(1, coords.GatherParallelThreshold)
	rows := make([]int, coords.GatherParallelThreshold)
	rows[len(rows)-1] = -1
	err := big.Gather(context.Background(), rows, make([]float64, len(rows)))
	require.ErrorIs(t, err, coords.ErrRowOutOfRange, "worker errors surface")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rows[len(rows)-1] = 0
	require.ErrorIs(t, big.Gather(ctx, rows, make([]float64, len(rows))), context.Canceled)
}

func TestIndex_CloneIndependent(t *testing.T) {
	x := coords.New(1, 1)
	require.NoError(t, x.Set(0, []float64{1}))
	c := x.Clone()
	require.NoError(t, c.Set(0, []float64{2}))
	assert.Equal(t, []float64{1}, x.Row(0))
}

func TestNew_Panics(t *testing.T) {
	assert.Panics(t, func() { coords.New(0, 1) })
	assert.Panics(t, func() { coords.New(1, -1) })
}
