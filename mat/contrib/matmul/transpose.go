// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import (
	"github.com/gitia/froog/mat"
	"github.com/gitia/froog/mat/contrib/workerpool"
)

// Transpose tuning parameters
const (
	// MinTransposeParallelOps is the minimum elements before parallelizing transpose.
	MinTransposeParallelOps = 64 * 64

	// transposeBlock is the square tile edge used to keep both the source
	// reads and the destination writes within a few cache lines.
	transposeBlock = 32
)

// Transpose writes aᵗ into out, reshaping out to a.Cols()×a.Rows(). out must
// not share storage with a.
//
// Work is handed out one strip of transposeBlock output rows at a time
// through the executor's work-stealing loop. Each strip owns its output
// rows, so writers never touch the same destination line; the strided side
// of the copy is the read from a.
func Transpose(exec workerpool.Executor, a, out *mat.Dense) error {
	const op = "matmul.Transpose"
	if a == nil || out == nil {
		return mat.InvalidArgumentf(op, "nil matrix")
	}
	if mat.SharesStorage(a, out) {
		return mat.InvalidArgumentf(op, "out must not share storage with a")
	}

	m, k := a.Rows(), a.Cols()
	out.Reshape(k, m)
	if m == 0 || k == 0 {
		return nil
	}

	src, dst := a.Data(), out.Data()

	exec = workerpool.Resolve(exec)
	if m*k < MinTransposeParallelOps || exec.NumWorkers() == 1 {
		transposeStrip(src, dst, m, k, 0, k)
		return nil
	}
	strips := (k + transposeBlock - 1) / transposeBlock
	workerpool.ForAtomic(exec, strips, func(s int) {
		start := s * transposeBlock
		transposeStrip(src, dst, m, k, start, min(start+transposeBlock, k))
	})
	return nil
}

// transposeStrip fills output rows [jStart, jEnd) (source columns) of the
// k×m destination from the m×k source, one tile at a time.
func transposeStrip(src, dst []float64, m, k, jStart, jEnd int) {
	for i0 := 0; i0 < m; i0 += transposeBlock {
		i1 := min(i0+transposeBlock, m)
		for j0 := jStart; j0 < jEnd; j0 += transposeBlock {
			j1 := min(j0+transposeBlock, jEnd)
			for j := j0; j < j1; j++ {
				row := dst[j*m : (j+1)*m]
				for i := i0; i < i1; i++ {
					row[i] = src[i*k+j]
				}
			}
		}
	}
}
