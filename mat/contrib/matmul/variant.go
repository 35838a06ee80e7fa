// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import (
	"fmt"
	"strings"

	"github.com/gitia/froog/mat"
	"github.com/gitia/froog/mat/contrib/workerpool"
)

// Variant selects one of the multiplication algorithms.
type Variant int

const (
	// Reorder computes C = A*B with k-outer, j-inner rows.
	Reorder Variant = iota
	// Small computes C = A*B with one dot product per element.
	Small
	// TransAReorder computes C = Aᵗ*B.
	TransAReorder
	// MultAddReorder computes C += A*B.
	MultAddReorder
)

var variantNames = [...]string{
	Reorder:        "reorder",
	Small:          "small",
	TransAReorder:  "transa-reorder",
	MultAddReorder: "multadd-reorder",
}

// String returns the variant's command-line name.
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// Variants lists all variants in declaration order.
func Variants() []Variant {
	return []Variant{Reorder, Small, TransAReorder, MultAddReorder}
}

// ParseVariant is the inverse of Variant.String. Matching is case-insensitive.
func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range variantNames {
		if n == name {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("matmul: unknown variant %q (want one of %s)", name, strings.Join(variantNames[:], ", "))
}

// Mul runs the selected variant. For TransAReorder, a is the k×m matrix
// whose transpose is multiplied.
func Mul(exec workerpool.Executor, v Variant, a, b, c *mat.Dense) error {
	switch v {
	case Reorder:
		return MulReorder(exec, a, b, c)
	case Small:
		return MulSmall(exec, a, b, c)
	case TransAReorder:
		return MulTransAReorder(exec, a, b, c)
	case MultAddReorder:
		return MulAddReorder(exec, a, b, c)
	}
	return mat.InvalidArgumentf("matmul.Mul", "unknown variant %d", int(v))
}
