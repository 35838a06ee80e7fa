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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDimensionMismatch reports incompatible row/column counts between
	// operands, or between an operand and a vector argument.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrInvalidArgument reports an argument that is structurally unusable,
	// such as a nil matrix or an output sharing storage with an input.
	ErrInvalidArgument = errors.New("mat: invalid argument")

	// ErrOutOfRange is the panic payload of the bounds-checked indexers.
	ErrOutOfRange = errors.New("mat: index out of range")
)

// Shape is a rows×cols pair.
type Shape struct {
	Rows, Cols int
}

// String formats the shape as "RxC".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// DimensionError describes a shape incompatibility detected by a kernel
// before any work was dispatched.
//
// errors.Is(err, ErrDimensionMismatch) holds for every DimensionError.
type DimensionError struct {
	Op     string  // kernel entry point, e.g. "matmul.MulReorder"
	Reason string  // which dimensions disagree, e.g. "a.cols != b.rows"
	Shapes []Shape // operand shapes in argument order
}

// Error implements error.
func (e *DimensionError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Op)
	sb.WriteString(": dimension mismatch")
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	if len(e.Shapes) > 0 {
		sb.WriteString(" (")
		for i, s := range e.Shapes {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(s.String())
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// Is makes DimensionError match ErrDimensionMismatch.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// NewDimensionError builds a DimensionError from the operands involved.
// Nil operands are reported as 0x0.
func NewDimensionError(op, reason string, operands ...*Dense) error {
	shapes := make([]Shape, len(operands))
	for i, m := range operands {
		if m != nil {
			shapes[i] = m.Shape()
		}
	}
	return &DimensionError{Op: op, Reason: reason, Shapes: shapes}
}

// InvalidArgumentf wraps ErrInvalidArgument with the kernel name and detail.
func InvalidArgumentf(op, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrInvalidArgument, fmt.Sprintf(format, args...))
}
