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

// Package matvec provides the parallel dense matrix-vector product.
//
// # Matrix-Vector Product
//
//   - MatVec(exec, a, b, c) computes c = a * b
//
// where a is m×k, b is a vector of length k given either as a k×1 column or
// a 1×k row, and c is reshaped to an m×1 column.
//
// # Algorithm
//
// Each output element c[i] is the dot product of row i of a with b, summed
// left to right inside a single task. Rows are distributed across the
// executor's workers, so no partial sum is ever shared between workers and
// the result is bit-identical for any worker count.
//
// # Example Usage
//
//	// 3x4 matrix:
//	//   [1 2 3 4]
//	//   [5 6 7 8]
//	//   [9 0 1 2]
//	a, _ := mat.FromRows([][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 0, 1, 2}})
//	v, _ := mat.NewFromSlice(4, 1, []float64{1, 2, 3, 4})
//	c := mat.New(0, 0)
//
//	matvec.MatVec(nil, a, v, c)
//	// c = [30, 70, 20]
package matvec
