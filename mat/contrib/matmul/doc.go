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

// Package matmul provides parallel dense matrix multiplication over
// row-major float64 matrices.
//
// Four interchangeable algorithms are provided. They compute the same sums
// and differ only in how memory is traversed and which loop is split across
// workers; the caller picks the one expected to be fastest for its shapes.
//
//   - Reorder (MulReorder): C = A*B. Rows of C are split across workers. Each
//     row walks the shared dimension in the outer loop and the columns of C
//     in the inner loop, so both B's row and C's row are streamed
//     sequentially. The k=0 term is assigned, the rest accumulated.
//   - Small (MulSmall): C = A*B. Rows of C are split across workers; each
//     element is a scalar dot product striding down a column of B. Suits a
//     small shared dimension.
//   - TransAReorder (MulTransAReorder): C = Aᵗ*B for A stored k×m. The
//     columns of A (rows of C) are split across workers, with the same
//     assign-then-accumulate order as Reorder.
//   - MultAddReorder (MulAddReorder): C += A*B, same traversal as Reorder but
//     accumulating into the existing contents of C, which must already be
//     m×n.
//
// When the shared dimension k is 0, Reorder, Small and TransAReorder
// zero-fill C, while MultAddReorder leaves C unchanged (it adds a zero
// product).
//
// Example usage:
//
//	// C = A * B where A is MxK, B is KxN
//	a := mat.New(M, K)
//	b := mat.New(K, N)
//	c := mat.New(0, 0) // reshaped to MxN
//
//	if err := matmul.Mul(pool, matmul.Reorder, a, b, c); err != nil {
//	    return err
//	}
//
// C must never share storage with A or B; such calls fail with
// mat.ErrInvalidArgument before any work starts. Incompatible shapes fail
// with a *mat.DimensionError. There is no automatic variant selection.
package matmul
