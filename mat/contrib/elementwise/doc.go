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

// Package elementwise applies scalar and pairwise arithmetic to every element
// of dense matrices, split across a worker pool over the flat index range.
//
// # Call shapes
//
// Every operation comes in at most two shapes:
//   - a pure form, f(exec, ..., a[, b], c), that writes into a separate output
//     c. c is reshaped to a's dimensions and must not share storage with any
//     input, otherwise ErrInvalidArgument is returned.
//   - an in-place form, fInPlace(exec, a, ...), that overwrites a.
//
// Two-operand forms require a and b to have identical dimensions and return
// a *mat.DimensionError before touching any element otherwise.
//
// # Determinism
//
// The result at each flat index depends only on the inputs at that index.
// There is no cross-element reduction, so results are bit-identical whatever
// executor or worker count is used.
//
// # Example Usage
//
//	a, _ := mat.FromRows([][]float64{{1, 2}, {3, 4}})
//	c := mat.New(0, 0)
//	elementwise.Scale(nil, 2, a, c)      // c = [[2, 4], [6, 8]]
//	elementwise.NegateInPlace(nil, c)    // c = [[-2, -4], [-6, -8]]
package elementwise
