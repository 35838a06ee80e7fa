// Copyright 2025 froog Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package matvec

import (
	"testing"

	"github.com/gitia/froog/mat"
	"github.com/gitia/froog/mat/contrib/workerpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmat "gonum.org/v1/gonum/mat"
)

func TestMatVecColumnAndRowVector(t *testing.T) {
	a, err := mat.FromRows([][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 0, 1, 2},
	})
	require.NoError(t, err)

	col, err := mat.NewFromSlice(4, 1, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	row, err := mat.NewFromSlice(1, 4, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	for name, v := range map[string]*mat.Dense{"column": col, "row": row} {
		t.Run(name, func(t *testing.T) {
			c := mat.New(0, 0)
			require.NoError(t, MatVec(workerpool.Serial{}, a, v, c))
			assert.Equal(t, mat.Shape{Rows: 3, Cols: 1}, c.Shape())
			assert.Equal(t, []float64{30, 70, 20}, c.Data())
		})
	}
}

func TestMatVecDimensionErrors(t *testing.T) {
	a := mat.New(3, 4)
	c := mat.New(0, 0)

	cases := map[string]*mat.Dense{
		"not a vector":     mat.New(2, 2),
		"column too short": mat.New(3, 1),
		"row too long":     mat.New(1, 5),
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			err := MatVec(nil, a, b, c)
			assert.ErrorIs(t, err, mat.ErrDimensionMismatch)
			var dimErr *mat.DimensionError
			require.ErrorAs(t, err, &dimErr)
			assert.Equal(t, "matvec.MatVec", dimErr.Op)
		})
	}

	err := MatVec(nil, a, mat.New(2, 2), c)
	assert.Contains(t, err.Error(), "b is not a vector")

	// A 1x1 b is a vector of length 1 in either orientation.
	one, err := mat.NewFromSlice(1, 1, []float64{3})
	require.NoError(t, err)
	single, err := mat.FromRows([][]float64{{2}, {5}})
	require.NoError(t, err)
	require.NoError(t, MatVec(nil, single, one, c))
	assert.Equal(t, []float64{6, 15}, c.Data())
}

func TestMatVecEmptySharedDimension(t *testing.T) {
	a := mat.New(5, 0)
	b := mat.New(0, 1)
	c := mat.New(2, 3)
	c.Fill(9)

	require.NoError(t, MatVec(nil, a, b, c))
	assert.Equal(t, mat.Shape{Rows: 5, Cols: 1}, c.Shape())
	assert.Equal(t, make([]float64, 5), c.Data())

	// Same element count: Reshape keeps storage, so the zero fill matters.
	c = mat.New(1, 5)
	c.Fill(9)
	require.NoError(t, MatVec(nil, a, b, c))
	assert.Equal(t, make([]float64, 5), c.Data())
}

func TestMatVecRejectsAliasing(t *testing.T) {
	a := mat.New(3, 3)
	b := mat.New(3, 1)
	assert.ErrorIs(t, MatVec(nil, a, b, b), mat.ErrInvalidArgument)
	assert.ErrorIs(t, MatVec(nil, a, b, a), mat.ErrInvalidArgument)
	assert.ErrorIs(t, MatVec(nil, nil, b, a), mat.ErrInvalidArgument)
}

func TestMatVecMatchesGonum(t *testing.T) {
	rng := mat.NewSeededRand(3)
	const m, k = 257, 131
	a := mat.NewRandom(m, k, -1, 1, rng)
	b := mat.NewRandom(k, 1, -1, 1, rng)
	c := mat.New(0, 0)

	require.NoError(t, MatVec(nil, a, b, c))

	var want gmat.VecDense
	want.MulVec(gmat.NewDense(m, k, a.Data()), gmat.NewVecDense(k, b.Data()))
	for i := range m {
		assert.InDelta(t, want.AtVec(i), c.AtFlat(i), 1e-12, "row %d", i)
	}
}

func TestMatVecWorkerCountIndependent(t *testing.T) {
	rng := mat.NewSeededRand(4)
	const m, k = 400, 300
	require.GreaterOrEqual(t, m*k, MinParallelOps)

	a := mat.NewRandom(m, k, -100, 100, rng)
	b := mat.NewRandom(1, k, -100, 100, rng)

	want := mat.New(0, 0)
	require.NoError(t, MatVec(workerpool.Serial{}, a, b, want))

	for _, workers := range []int{2, 3, 8} {
		pool := workerpool.New(workers)
		got := mat.New(0, 0)
		require.NoError(t, MatVec(pool, a, b, got))
		pool.Close()
		assert.True(t, want.Equal(got), "workers=%d", workers)
	}
}

func BenchmarkMatVec(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()

	rng := mat.NewSeededRand(1)
	a := mat.NewRandom(1024, 1024, -1, 1, rng)
	v := mat.NewRandom(1024, 1, -1, 1, rng)
	c := mat.New(1024, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = MatVec(pool, a, v, c)
	}
}
