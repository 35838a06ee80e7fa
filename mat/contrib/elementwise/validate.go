// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

package elementwise

import (
	"github.com/gitia/froog/mat"
	"github.com/gitia/froog/mat/contrib/workerpool"
)

// MinParallelElements is the element count below which a call runs on the
// calling goroutine. Element-wise kernels are memory bound, so the pool's
// dispatch overhead only pays off on larger matrices.
const MinParallelElements = 16384

// run splits [0, n) across exec on cache-line aligned boundaries.
func run(exec workerpool.Executor, n int, body func(start, end int)) {
	if n == 0 {
		return
	}
	exec = workerpool.Resolve(exec)
	if n < MinParallelElements || exec.NumWorkers() == 1 {
		body(0, n)
		return
	}
	workerpool.ForAligned(exec, n, workerpool.CacheLineFloats, body)
}

func checkNotNil(op string, ms ...*mat.Dense) error {
	for _, m := range ms {
		if m == nil {
			return mat.InvalidArgumentf(op, "nil matrix")
		}
	}
	return nil
}

func checkSameShape(op string, a, b *mat.Dense) error {
	if !mat.SameShape(a, b) {
		return mat.NewDimensionError(op, "a and b must have the same shape", a, b)
	}
	return nil
}

// prepareOut rejects an output that shares storage with any input and
// reshapes it to match the inputs.
func prepareOut(op string, c *mat.Dense, inputs ...*mat.Dense) error {
	for _, in := range inputs {
		if mat.SharesStorage(in, c) {
			return mat.InvalidArgumentf(op, "output shares storage with an input; use the in-place form")
		}
	}
	c.Reshape(inputs[0].Rows(), inputs[0].Cols())
	return nil
}

// unary validates a pure one-input operation.
func unary(op string, a, c *mat.Dense) error {
	if err := checkNotNil(op, a, c); err != nil {
		return err
	}
	return prepareOut(op, c, a)
}

// binary validates a pure two-input operation.
func binary(op string, a, b, c *mat.Dense) error {
	if err := checkNotNil(op, a, b, c); err != nil {
		return err
	}
	if err := checkSameShape(op, a, b); err != nil {
		return err
	}
	return prepareOut(op, c, a, b)
}

// inPlace validates an operation that overwrites a using b.
// b may be a itself, but not a different matrix overlapping a's storage.
func inPlace(op string, a, b *mat.Dense) error {
	if err := checkNotNil(op, a, b); err != nil {
		return err
	}
	if err := checkSameShape(op, a, b); err != nil {
		return err
	}
	if a != b && mat.SharesStorage(a, b) {
		return mat.InvalidArgumentf(op, "b partially overlaps a")
	}
	return nil
}
