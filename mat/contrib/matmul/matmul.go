// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import (
	"github.com/gitia/froog/mat"
	"github.com/gitia/froog/mat/contrib/workerpool"
)

// MinParallelOps is the minimum number of multiply-adds (m*n*k) before a
// product is spread across workers. Below it the call runs on the calling
// goroutine.
const MinParallelOps = 64 * 64 * 64

// MulReorder computes c = a * b where a is m×k and b is k×n. c is reshaped
// to m×n.
func MulReorder(exec workerpool.Executor, a, b, c *mat.Dense) error {
	const op = "matmul.MulReorder"
	m, n, k, err := prepare(op, a, b, c)
	if err != nil || m == 0 || n == 0 {
		return err
	}
	ad, bd, cd := a.Data(), b.Data(), c.Data()
	forRows(exec, m, n, k, func(i int) {
		reorderRow(ad[i*k:(i+1)*k], bd, cd[i*n:(i+1)*n])
	})
	return nil
}

// MulSmall computes c = a * b with one dot product per output element.
// Shapes and errors match MulReorder.
func MulSmall(exec workerpool.Executor, a, b, c *mat.Dense) error {
	const op = "matmul.MulSmall"
	m, n, k, err := prepare(op, a, b, c)
	if err != nil || m == 0 || n == 0 {
		return err
	}
	ad, bd, cd := a.Data(), b.Data(), c.Data()
	forRows(exec, m, n, k, func(i int) {
		smallRow(ad[i*k:(i+1)*k], bd, cd[i*n:(i+1)*n])
	})
	return nil
}

// MulTransAReorder computes c = aᵗ * b where a is k×m and b is k×n. c is
// reshaped to m×n. a.Rows() must equal b.Rows().
func MulTransAReorder(exec workerpool.Executor, a, b, c *mat.Dense) error {
	const op = "matmul.MulTransAReorder"
	if err := checkOperands(op, a, b, c); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return mat.NewDimensionError(op, "a.rows != b.rows", a, b)
	}
	k, m, n := a.Rows(), a.Cols(), b.Cols()
	c.Reshape(m, n)
	if k == 0 {
		c.Zero()
		return nil
	}
	if m == 0 || n == 0 {
		return nil
	}
	ad, bd, cd := a.Data(), b.Data(), c.Data()
	forRows(exec, m, n, k, func(i int) {
		transARow(ad, bd, cd[i*n:(i+1)*n], i, m, k)
	})
	return nil
}

// MulAddReorder computes c += a * b where a is m×k and b is k×n. Unlike the
// other variants c is not reshaped: it must already be m×n, otherwise a
// *mat.DimensionError is returned.
//
// When k is 0 the product is the zero matrix, so c is left unchanged. This
// differs from the other variants, which zero-fill c when k is 0 because c
// holds only the product.
func MulAddReorder(exec workerpool.Executor, a, b, c *mat.Dense) error {
	const op = "matmul.MulAddReorder"
	if err := checkOperands(op, a, b, c); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return mat.NewDimensionError(op, "a.cols != b.rows", a, b)
	}
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	if c.Rows() != m || c.Cols() != n {
		return mat.NewDimensionError(op, "c must be a.rows x b.cols", a, b, c)
	}
	if m == 0 || n == 0 || k == 0 {
		return nil
	}
	ad, bd, cd := a.Data(), b.Data(), c.Data()
	forRows(exec, m, n, k, func(i int) {
		multAddRow(ad[i*k:(i+1)*k], bd, cd[i*n:(i+1)*n])
	})
	return nil
}

// checkOperands rejects nil matrices and an output aliasing an input. It
// runs before any shape check.
func checkOperands(op string, a, b, c *mat.Dense) error {
	if a == nil || b == nil || c == nil {
		return mat.InvalidArgumentf(op, "nil matrix")
	}
	if mat.SharesStorage(a, c) || mat.SharesStorage(b, c) {
		return mat.InvalidArgumentf(op, "c must not share storage with a or b")
	}
	return nil
}

// prepare validates a plain c = a*b call, reshapes c to m×n and zero-fills
// it when the shared dimension is empty.
func prepare(op string, a, b, c *mat.Dense) (m, n, k int, err error) {
	if err = checkOperands(op, a, b, c); err != nil {
		return
	}
	if a.Cols() != b.Rows() {
		err = mat.NewDimensionError(op, "a.cols != b.rows", a, b)
		return
	}
	m, k, n = a.Rows(), a.Cols(), b.Cols()
	c.Reshape(m, n)
	if k == 0 {
		c.Zero()
		m = 0
	}
	return
}

// forRows calls row(i) for every output row, spreading rows across exec when
// the product is large enough. Range boundaries are aligned so that
// neighbouring workers never write into the same cache line of C.
func forRows(exec workerpool.Executor, m, n, k int, row func(i int)) {
	rows := func(start, end int) {
		for i := start; i < end; i++ {
			row(i)
		}
	}
	exec = workerpool.Resolve(exec)
	if m*n*k < MinParallelOps || exec.NumWorkers() == 1 {
		rows(0, m)
		return
	}
	workerpool.ForAligned(exec, m, rowAlign(n), rows)
}

// rowAlign is the smallest row count whose n-wide rows span a whole number
// of cache lines.
func rowAlign(n int) int {
	line := workerpool.CacheLineFloats
	a, b := n, line
	for b != 0 {
		a, b = b, a%b
	}
	return line / a
}

// reorderRow computes cRow = aRow * B, with B's rows laid out back to back
// with len(cRow) columns. The first term is assigned, the rest accumulated.
func reorderRow(aRow, b, cRow []float64) {
	n := len(cRow)
	valA := aRow[0]
	for j, v := range b[:n] {
		cRow[j] = valA * v
	}
	for p := 1; p < len(aRow); p++ {
		valA = aRow[p]
		for j, v := range b[p*n : (p+1)*n] {
			cRow[j] += valA * v
		}
	}
}

// multAddRow is reorderRow accumulating every term into cRow.
func multAddRow(aRow, b, cRow []float64) {
	n := len(cRow)
	for p, valA := range aRow {
		for j, v := range b[p*n : (p+1)*n] {
			cRow[j] += valA * v
		}
	}
}

func smallRow(aRow, b, cRow []float64) {
	n := len(cRow)
	for j := range cRow {
		var total float64
		idx := j
		for _, v := range aRow {
			total += v * b[idx]
			idx += n
		}
		cRow[j] = total
	}
}

// transARow computes row i of aᵗ*B, reading column i of the k×m matrix a.
func transARow(a, b, cRow []float64, i, m, k int) {
	n := len(cRow)
	valA := a[i]
	for j, v := range b[:n] {
		cRow[j] = valA * v
	}
	for p := 1; p < k; p++ {
		valA = a[p*m+i]
		for j, v := range b[p*n : (p+1)*n] {
			cRow[j] += valA * v
		}
	}
}
