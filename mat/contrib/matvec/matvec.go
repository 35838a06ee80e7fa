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
	"github.com/gitia/froog/mat"
	"github.com/gitia/froog/mat/contrib/workerpool"
)

// MinParallelOps is the minimum number of multiply-adds (m*k) before the
// product is spread across workers.
const MinParallelOps = 64 * 64

// MatVec computes c = a * b.
//
//   - a is m×k
//   - b is k×1 or 1×k
//   - c is reshaped to m×1 and must not share storage with a or b
//
// Returns a *mat.DimensionError when b is not a vector or its length differs
// from a.Cols(). When k is 0, c is zero-filled.
func MatVec(exec workerpool.Executor, a, b, c *mat.Dense) error {
	const op = "matvec.MatVec"
	if a == nil || b == nil || c == nil {
		return mat.InvalidArgumentf(op, "nil matrix")
	}

	if !b.IsVector() {
		return mat.NewDimensionError(op, "b is not a vector", a, b)
	}
	// A vector's length is its element count in either orientation.
	if a.Cols() != b.Len() {
		return mat.NewDimensionError(op, "a.cols != len(b)", a, b)
	}

	if mat.SharesStorage(a, c) || mat.SharesStorage(b, c) {
		return mat.InvalidArgumentf(op, "c must not share storage with a or b")
	}

	m, k := a.Rows(), a.Cols()
	c.Reshape(m, 1)
	if k == 0 {
		c.Zero()
		return nil
	}

	ad, bd, cd := a.Data(), b.Data(), c.Data()
	rows := func(start, end int) {
		for i := start; i < end; i++ {
			row := ad[i*k : (i+1)*k]
			var total float64
			for j, v := range row {
				total += v * bd[j]
			}
			cd[i] = total
		}
	}

	exec = workerpool.Resolve(exec)
	if m*k < MinParallelOps || exec.NumWorkers() == 1 {
		rows(0, m)
		return nil
	}
	workerpool.ForAligned(exec, m, workerpool.CacheLineFloats, rows)
	return nil
}
