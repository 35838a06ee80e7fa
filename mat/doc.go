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

// Package mat provides the dense row-major float64 matrix shared by the
// parallel kernels under mat/contrib.
//
// # Storage
//
// A Dense stores an m×n matrix as one contiguous []float64 of length m*n,
// element (i, j) at offset i*n+j. Reshape only reallocates when the element
// count changes.
//
// # Kernels
//
// The arithmetic lives in sub-packages:
//   - mat/contrib/elementwise: scale, negate, add/sub/mul/div, pow, exp, log
//   - mat/contrib/matvec: matrix × vector
//   - mat/contrib/matmul: matrix × matrix (Reorder, Small, TransAReorder, MultAddReorder)
//   - mat/contrib/workerpool: the executor every kernel dispatches onto
//
// Every kernel validates shapes on the calling goroutine before dispatching
// work, then blocks until all row (or index) tasks finish.
//
// # Errors
//
// Shape problems are reported as *DimensionError, which matches
// ErrDimensionMismatch under errors.Is. Aliasing violations and nil operands
// wrap ErrInvalidArgument.
//
// Example:
//
//	a, _ := mat.FromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := mat.FromRows([][]float64{{5, 6}, {7, 8}})
//	c := mat.New(0, 0)
//	if err := matmul.MulReorder(nil, a, b, c); err != nil {
//	    log.Fatal(err)
//	}
//	// c = [[19, 22], [43, 50]]
package mat
