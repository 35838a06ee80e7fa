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

package mat

import (
	"fmt"
	"math"
	"strings"
	"unsafe"
)

// Dense is a rows×cols matrix of float64 values stored row-major in a single
// flat slice: element (i, j) lives at data[i*cols+j].
//
// A Dense exclusively owns its backing storage. len(data) == rows*cols at all
// times.
type Dense struct {
	rows, cols int
	data       []float64
}

// New returns a zero-filled rows×cols matrix.
// Panics if either dimension is negative.
func New(rows, cols int) *Dense {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("mat: negative dimensions %dx%d", rows, cols))
	}
	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// NewFromSlice returns a rows×cols matrix that adopts data as its storage.
// The caller must not use data afterwards.
func NewFromSlice(rows, cols int, data []float64) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, InvalidArgumentf("mat.NewFromSlice", "negative dimensions %dx%d", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, &DimensionError{
			Op:     "mat.NewFromSlice",
			Reason: fmt.Sprintf("len(data) = %d, want %d", len(data), rows*cols),
			Shapes: []Shape{{rows, cols}},
		}
	}
	return &Dense{rows: rows, cols: cols, data: data}, nil
}

// FromRows copies a slice of equal-length rows into a new matrix.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return New(0, 0), nil
	}
	cols := len(rows[0])
	m := New(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, &DimensionError{
				Op:     "mat.FromRows",
				Reason: fmt.Sprintf("row %d has %d columns, want %d", i, len(row), cols),
			}
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// Len returns rows*cols.
func (m *Dense) Len() int { return len(m.data) }

// Shape returns the matrix dimensions.
func (m *Dense) Shape() Shape { return Shape{m.rows, m.cols} }

// Data returns the row-major backing slice. Writes through it are visible
// in the matrix.
func (m *Dense) Data() []float64 { return m.data }

// IsVector reports whether the matrix has exactly one row or one column.
func (m *Dense) IsVector() bool { return m.rows == 1 || m.cols == 1 }

// At returns element (i, j). Panics with ErrOutOfRange on a bad index.
func (m *Dense) At(i, j int) float64 {
	return m.data[m.index(i, j)]
}

// Set assigns element (i, j). Panics with ErrOutOfRange on a bad index.
func (m *Dense) Set(i, j int, v float64) {
	m.data[m.index(i, j)] = v
}

// AtFlat returns the element at row-major offset idx.
func (m *Dense) AtFlat(idx int) float64 { return m.data[idx] }

// SetFlat assigns the element at row-major offset idx.
func (m *Dense) SetFlat(idx int, v float64) { m.data[idx] = v }

func (m *Dense) index(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, i, j, m.rows, m.cols))
	}
	return i*m.cols + j
}

// Reshape changes the dimensions to rows×cols. Storage is reallocated (and
// zeroed) only when the element count changes; otherwise the existing
// elements are reinterpreted in row-major order.
// Panics if either dimension is negative.
func (m *Dense) Reshape(rows, cols int) {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("mat: negative dimensions %dx%d", rows, cols))
	}
	if n := rows * cols; n != len(m.data) {
		m.data = make([]float64, n)
	}
	m.rows, m.cols = rows, cols
}

// Fill sets every element to v.
func (m *Dense) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Zero sets every element to 0.
func (m *Dense) Zero() {
	clear(m.data)
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{rows: m.rows, cols: m.cols, data: data}
}

// CopyFrom reshapes m to src's dimensions and copies src's elements.
func (m *Dense) CopyFrom(src *Dense) {
	m.Reshape(src.rows, src.cols)
	copy(m.data, src.data)
}

// Equal reports whether both matrices have the same shape and bit-identical
// elements (NaN never equals NaN).
func (m *Dense) Equal(other *Dense) bool {
	if !SameShape(m, other) {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// EqualApprox reports whether both matrices have the same shape and every
// pair of elements differs by at most tol.
func (m *Dense) EqualApprox(other *Dense, tol float64) bool {
	if !SameShape(m, other) {
		return false
	}
	for i, v := range m.data {
		if math.Abs(v-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// MaxAbsDiff returns max |m[i]-other[i]|, or +Inf if the shapes differ.
func (m *Dense) MaxAbsDiff(other *Dense) float64 {
	if !SameShape(m, other) {
		return math.Inf(1)
	}
	var worst float64
	for i, v := range m.data {
		if d := math.Abs(v - other.data[i]); d > worst {
			worst = d
		}
	}
	return worst
}

// Sum returns the sum of all elements, accumulated in row-major order.
func (m *Dense) Sum() float64 {
	var s float64
	for _, v := range m.data {
		s += v
	}
	return s
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := range m.rows {
		sb.WriteByte('[')
		for j := range m.cols {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.cols+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

// SameShape reports whether a and b have identical dimensions.
func SameShape(a, b *Dense) bool {
	return a.rows == b.rows && a.cols == b.cols
}

// SharesStorage reports whether a and b are the same matrix or their
// elements overlap in memory. Only the rows*cols elements of each matrix
// count, so disjoint views of one backing array do not share storage.
func SharesStorage(a, b *Dense) bool {
	if a == b {
		return true
	}
	if len(a.data) == 0 || len(b.data) == 0 {
		return false
	}
	const size = unsafe.Sizeof(float64(0))
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a.data)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b.data)))
	aEnd := aStart + uintptr(len(a.data))*size
	bEnd := bStart + uintptr(len(b.data))*size
	return aStart < bEnd && bStart < aEnd
}
