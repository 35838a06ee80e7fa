// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

package elementwise

import (
	"github.com/gitia/froog/mat"
	"github.com/gitia/froog/mat/contrib/workerpool"
)

// In-place forms overwrite their first argument and never reshape it.

// ScaleInPlace computes a *= alpha.
func ScaleInPlace(exec workerpool.Executor, alpha float64, a *mat.Dense) error {
	if err := checkNotNil("elementwise.ScaleInPlace", a); err != nil {
		return err
	}
	x := a.Data()
	run(exec, len(x), func(start, end int) {
		for i := start; i < end; i++ {
			x[i] *= alpha
		}
	})
	return nil
}

// NegateInPlace computes a = -a.
func NegateInPlace(exec workerpool.Executor, a *mat.Dense) error {
	if err := checkNotNil("elementwise.NegateInPlace", a); err != nil {
		return err
	}
	x := a.Data()
	run(exec, len(x), func(start, end int) {
		for i := start; i < end; i++ {
			x[i] = -x[i]
		}
	})
	return nil
}

// AddScalarInPlace computes a += v.
func AddScalarInPlace(exec workerpool.Executor, a *mat.Dense, v float64) error {
	if err := checkNotNil("elementwise.AddScalarInPlace", a); err != nil {
		return err
	}
	x := a.Data()
	run(exec, len(x), func(start, end int) {
		for i := start; i < end; i++ {
			x[i] += v
		}
	})
	return nil
}

// DivScalarInPlace computes a /= alpha.
func DivScalarInPlace(exec workerpool.Executor, a *mat.Dense, alpha float64) error {
	if err := checkNotNil("elementwise.DivScalarInPlace", a); err != nil {
		return err
	}
	x := a.Data()
	run(exec, len(x), func(start, end int) {
		for i := start; i < end; i++ {
			x[i] /= alpha
		}
	})
	return nil
}

// ScalarDivInPlace computes a = alpha / a.
func ScalarDivInPlace(exec workerpool.Executor, alpha float64, a *mat.Dense) error {
	if err := checkNotNil("elementwise.ScalarDivInPlace", a); err != nil {
		return err
	}
	x := a.Data()
	run(exec, len(x), func(start, end int) {
		for i := start; i < end; i++ {
			x[i] = alpha / x[i]
		}
	})
	return nil
}

// AddInPlace computes a += b.
func AddInPlace(exec workerpool.Executor, a, b *mat.Dense) error {
	if err := inPlace("elementwise.AddInPlace", a, b); err != nil {
		return err
	}
	x, y := a.Data(), b.Data()
	run(exec, len(x), func(start, end int) {
		for i := start; i < end; i++ {
			x[i] += y[i]
		}
	})
	return nil
}

// AddScaledInPlace computes a += beta*b.
func AddScaledInPlace(exec workerpool.Executor, a *mat.Dense, beta float64, b *mat.Dense) error {
	if err := inPlace("elementwise.AddScaledInPlace", a, b); err != nil {
		return err
	}
	x, y := a.Data(), b.Data()
	run(exec, len(x), func(start, end int) {
		for i := start; i < end; i++ {
			x[i] += beta * y[i]
		}
	})
	return nil
}

// SubInPlace computes a -= b.
func SubInPlace(exec workerpool.Executor, a, b *mat.Dense) error {
	if err := inPlace("elementwise.SubInPlace", a, b); err != nil {
		return err
	}
	x, y := a.Data(), b.Data()
	run(exec, len(x), func(start, end int) {
		for i := start; i < end; i++ {
			x[i] -= y[i]
		}
	})
	return nil
}

// MulInPlace computes a *= b element-wise.
func MulInPlace(exec workerpool.Executor, a, b *mat.Dense) error {
	if err := inPlace("elementwise.MulInPlace", a, b); err != nil {
		return err
	}
	x, y := a.Data(), b.Data()
	run(exec, len(x), func(start, end int) {
		for i := start; i < end; i++ {
			x[i] *= y[i]
		}
	})
	return nil
}

// DivInPlace computes a /= b element-wise.
func DivInPlace(exec workerpool.Executor, a, b *mat.Dense) error {
	if err := inPlace("elementwise.DivInPlace", a, b); err != nil {
		return err
	}
	x, y := a.Data(), b.Data()
	run(exec, len(x), func(start, end int) {
		for i := start; i < end; i++ {
			x[i] /= y[i]
		}
	})
	return nil
}
