// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/gitia/froog/mat"
	"github.com/gitia/froog/mat/contrib/workerpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranspose(t *testing.T) {
	a := must(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	out := mat.New(0, 0)
	require.NoError(t, Transpose(nil, a, out))
	assert.Equal(t, mat.Shape{Rows: 3, Cols: 2}, out.Shape())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, out.Data())
}

func TestTransposeParallel(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	rng := mat.NewSeededRand(2)
	for _, dims := range [][2]int{{1, 1}, {3, 70}, {65, 129}, {200, 150}} {
		m, k := dims[0], dims[1]
		t.Run(fmt.Sprintf("%dx%d", m, k), func(t *testing.T) {
			a := mat.NewRandom(m, k, -1, 1, rng)
			out := mat.New(0, 0)
			require.NoError(t, Transpose(pool, a, out))
			require.Equal(t, mat.Shape{Rows: k, Cols: m}, out.Shape())
			for i := range m {
				for j := range k {
					require.Equal(t, a.At(i, j), out.At(j, i), "(%d,%d)", i, j)
				}
			}

			back := mat.New(0, 0)
			require.NoError(t, Transpose(pool, out, back))
			assert.True(t, a.Equal(back))
		})
	}
}

// stealingExecutor counts the indices handed out through ParallelForAtomic.
type stealingExecutor struct {
	*workerpool.Pool
	items atomic.Int64
}

func (e *stealingExecutor) ParallelForAtomic(n int, fn func(i int)) {
	e.Pool.ParallelForAtomic(n, func(i int) {
		e.items.Add(1)
		fn(i)
	})
}

func TestTransposeStripsUseWorkStealing(t *testing.T) {
	exec := &stealingExecutor{Pool: workerpool.New(3)}
	defer exec.Close()

	const m, k = 90, 100
	require.GreaterOrEqual(t, m*k, MinTransposeParallelOps)
	a := mat.NewRandom(m, k, -1, 1, mat.NewSeededRand(6))
	out := mat.New(0, 0)
	require.NoError(t, Transpose(exec, a, out))

	// One item per strip of output rows, the last one partial.
	assert.Equal(t, int64((k+transposeBlock-1)/transposeBlock), exec.items.Load())

	want := mat.New(0, 0)
	require.NoError(t, Transpose(workerpool.Serial{}, a, want))
	assert.True(t, want.Equal(out))
}

func TestTransposeRejectsAliasing(t *testing.T) {
	a := mat.New(3, 3)
	assert.ErrorIs(t, Transpose(nil, a, a), mat.ErrInvalidArgument)
	assert.ErrorIs(t, Transpose(nil, nil, a), mat.ErrInvalidArgument)
}

func TestTransposeEmpty(t *testing.T) {
	out := mat.New(2, 2)
	require.NoError(t, Transpose(nil, mat.New(0, 4), out))
	assert.Equal(t, mat.Shape{Rows: 4, Cols: 0}, out.Shape())
}
