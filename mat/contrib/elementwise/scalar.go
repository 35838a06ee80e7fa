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

// Scale computes c = alpha * a.
func Scale(exec workerpool.Executor, alpha float64, a, c *mat.Dense) error {
	if err := unary("elementwise.Scale", a, c); err != nil {
		return err
	}
	src, dst := a.Data(), c.Data()
	run(exec, len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = src[i] * alpha
		}
	})
	return nil
}

// Negate computes c = -a.
func Negate(exec workerpool.Executor, a, c *mat.Dense) error {
	if err := unary("elementwise.Negate", a, c); err != nil {
		return err
	}
	src, dst := a.Data(), c.Data()
	run(exec, len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = -src[i]
		}
	})
	return nil
}

// AddScalar computes c = a + v.
func AddScalar(exec workerpool.Executor, a *mat.Dense, v float64, c *mat.Dense) error {
	if err := unary("elementwise.AddScalar", a, c); err != nil {
		return err
	}
	src, dst := a.Data(), c.Data()
	run(exec, len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = src[i] + v
		}
	})
	return nil
}

// SubScalar computes c = a - v.
func SubScalar(exec workerpool.Executor, a *mat.Dense, v float64, c *mat.Dense) error {
	if err := unary("elementwise.SubScalar", a, c); err != nil {
		return err
	}
	src, dst := a.Data(), c.Data()
	run(exec, len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = src[i] - v
		}
	})
	return nil
}

// ScalarSub computes c = v - a.
func ScalarSub(exec workerpool.Executor, v float64, a, c *mat.Dense) error {
	if err := unary("elementwise.ScalarSub", a, c); err != nil {
		return err
	}
	src, dst := a.Data(), c.Data()
	run(exec, len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = v - src[i]
		}
	})
	return nil
}

// DivScalar computes c = a / alpha.
func DivScalar(exec workerpool.Executor, a *mat.Dense, alpha float64, c *mat.Dense) error {
	if err := unary("elementwise.DivScalar", a, c); err != nil {
		return err
	}
	src, dst := a.Data(), c.Data()
	run(exec, len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = src[i] / alpha
		}
	})
	return nil
}

// ScalarDiv computes c = alpha / a.
func ScalarDiv(exec workerpool.Executor, alpha float64, a, c *mat.Dense) error {
	if err := unary("elementwise.ScalarDiv", a, c); err != nil {
		return err
	}
	src, dst := a.Data(), c.Data()
	run(exec, len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = alpha / src[i]
		}
	})
	return nil
}

// Pow computes c = a ^ p element-wise using math.Pow.
func Pow(exec workerpool.Executor, a *mat.Dense, p float64, c *mat.Dense) error {
	if err := unary("elementwise.Pow", a, c); err != nil {
		return err
	}
	src, dst := a.Data(), c.Data()
	run(exec, len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = math.Pow(src[i], p)
		}
	})
	return nil
}

// Exp computes c = e ^ a.
func Exp(exec workerpool.Executor, a, c *mat.Dense) error {
	if err := unary("elementwise.Exp", a, c); err != nil {
		return err
	}
	src, dst := a.Data(), c.Data()
	run(exec, len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = math.Exp(src[i])
		}
	})
	return nil
}

// Log computes c = ln(a). Non-positive inputs follow math.Log (-Inf, NaN).
func Log(exec workerpool.Executor, a, c *mat.Dense) error {
	if err := unary("elementwise.Log", a, c); err != nil {
		return err
	}
	src, dst := a.Data(), c.Data()
	run(exec, len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = math.Log(src[i])
		}
	})
	return nil
}
