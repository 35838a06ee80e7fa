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

package elementwise

import (
	"math"

	"github.com/gitia/froog/mat"
	"github.com/gitia/froog/mat/contrib/workerpool"
)

// Add computes c = a + b.
func Add(exec workerpool.Executor, a, b, c *mat.Dense) error {
	if err := binary("elementwise.Add", a, b, c); err != nil {
		return err
	}
	x, y, dst := a.Data(), b.Data(), c.Data()
	run(exec, len(x), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = x[i] + y[i]
		}
	})
	return nil
}

// AddScaled computes c = a + beta*b.
func AddScaled(exec workerpool.Executor, a *mat.Dense, beta float64, b, c *mat.Dense) error {
	if err := binary("elementwise.AddScaled", a, b, c); err != nil {
		return err
	}
	x, y, dst := a.Data(), b.Data(), c.Data()
	run(exec, len(x), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = x[i] + beta*y[i]
		}
	})
	return nil
}

// ScaleAdd computes c = alpha*a + b.
func ScaleAdd(exec workerpool.Executor, alpha float64, a, b, c *mat.Dense) error {
	if err := binary("elementwise.ScaleAdd", a, b, c); err != nil {
		return err
	}
	x, y, dst := a.Data(), b.Data(), c.Data()
	run(exec, len(x), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = alpha*x[i] + y[i]
		}
	})
	return nil
}

// Combine computes c = alpha*a + beta*b.
func Combine(exec workerpool.Executor, alpha float64, a *mat.Dense, beta float64, b, c *mat.Dense) error {
	if err := binary("elementwise.Combine", a, b, c); err != nil {
		return err
	}
	x, y, dst := a.Data(), b.Data(), c.Data()
	run(exec, len(x), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = alpha*x[i] + beta*y[i]
		}
	})
	return nil
}

// Sub computes c = a - b.
func Sub(exec workerpool.Executor, a, b, c *mat.Dense) error {
	if err := binary("elementwise.Sub", a, b, c); err != nil {
		return err
	}
	x, y, dst := a.Data(), b.Data(), c.Data()
	run(exec, len(x), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = x[i] - y[i]
		}
	})
	return nil
}

// Mul computes the element-wise (Hadamard) product c = a ∘ b.
func Mul(exec workerpool.Executor, a, b, c *mat.Dense) error {
	if err := binary("elementwise.Mul", a, b, c); err != nil {
		return err
	}
	x, y, dst := a.Data(), b.Data(), c.Data()
	run(exec, len(x), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = x[i] * y[i]
		}
	})
	return nil
}

// Div computes c = a / b element-wise.
func Div(exec workerpool.Executor, a, b, c *mat.Dense) error {
	if err := binary("elementwise.Div", a, b, c); err != nil {
		return err
	}
	x, y, dst := a.Data(), b.Data(), c.Data()
	run(exec, len(x), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = x[i] / y[i]
		}
	})
	return nil
}

// PowElem computes c = a ^ b element-wise.
func PowElem(exec workerpool.Executor, a, b, c *mat.Dense) error {
	if err := binary("elementwise.PowElem", a, b, c); err != nil {
		return err
	}
	x, y, dst := a.Data(), b.Data(), c.Data()
	run(exec, len(x), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = math.Pow(x[i], y[i])
		}
	})
	return nil
}

// ScalarPow computes c = base ^ b element-wise.
func ScalarPow(exec workerpool.Executor, base float64, b, c *mat.Dense) error {
	if err := unary("elementwise.ScalarPow", b, c); err != nil {
		return err
	}
	src, dst := b.Data(), c.Data()
	run(exec, len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = math.Pow(base, src[i])
		}
	})
	return nil
}
