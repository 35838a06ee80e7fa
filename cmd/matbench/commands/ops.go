// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/gitia/froog/mat"
	"github.com/gitia/froog/mat/contrib/elementwise"
	"github.com/gitia/froog/mat/contrib/matmul"
	"github.com/gitia/froog/mat/contrib/matvec"
	"github.com/gitia/froog/mat/contrib/workerpool"
)

// scalarOperand is the s passed to the scalar element-wise kernels.
const scalarOperand = 2

// kernelCall is one timed call and the matrix it writes.
type kernelCall struct {
	run func(exec workerpool.Executor) error
	out *mat.Dense
}

// inputs draws operands for a sweep size. Every benchmark draws its matrices
// in a fixed order from rng so a seed reproduces the same inputs.
type inputs func(dim int, rng *rand.Rand, lo, hi float64) kernelCall

var benchmarks = map[string]inputs{
	"matmul-reorder": func(dim int, rng *rand.Rand, lo, hi float64) kernelCall {
		return mulCall(matmul.Reorder,
			mat.NewRandom(dim, dim, lo, hi, rng), mat.NewRandom(dim, dim, lo, hi, rng), mat.New(dim, dim))
	},
	"matmul-small": func(dim int, rng *rand.Rand, lo, hi float64) kernelCall {
		return mulCall(matmul.Small,
			mat.NewRandom(dim, dim*2, lo, hi, rng), mat.NewRandom(dim*2, dim, lo, hi, rng), mat.New(dim, dim))
	},
	"matmul-transa": func(dim int, rng *rand.Rand, lo, hi float64) kernelCall {
		return mulCall(matmul.TransAReorder,
			mat.NewRandom(dim*2, dim, lo, hi, rng), mat.NewRandom(dim*2, dim, lo, hi, rng), mat.New(dim, dim))
	},
	"matmul-multadd": func(dim int, rng *rand.Rand, lo, hi float64) kernelCall {
		return mulCall(matmul.MultAddReorder,
			mat.NewRandom(dim, dim, lo, hi, rng), mat.NewRandom(dim, dim, lo, hi, rng), mat.New(dim, dim))
	},
	"matvec": func(dim int, rng *rand.Rand, lo, hi float64) kernelCall {
		a := mat.NewRandom(dim, dim, lo, hi, rng)
		b := mat.NewRandom(dim, 1, lo, hi, rng)
		c := mat.New(dim, 1)
		return kernelCall{
			run: func(exec workerpool.Executor) error { return matvec.MatVec(exec, a, b, c) },
			out: c,
		}
	},
	"transpose": func(dim int, rng *rand.Rand, lo, hi float64) kernelCall {
		a := mat.NewRandom(dim, dim, lo, hi, rng)
		c := mat.New(dim, dim)
		return kernelCall{
			run: func(exec workerpool.Executor) error { return matmul.Transpose(exec, a, c) },
			out: c,
		}
	},
}

func init() {
	for _, op := range elementwise.Ops() {
		benchmarks[op.String()] = elementwiseInputs(op)
	}
}

func mulCall(v matmul.Variant, a, b, c *mat.Dense) kernelCall {
	return kernelCall{
		run: func(exec workerpool.Executor) error { return matmul.Mul(exec, v, a, b, c) },
		out: c,
	}
}

func elementwiseInputs(op elementwise.Op) inputs {
	return func(dim int, rng *rand.Rand, lo, hi float64) kernelCall {
		a := mat.NewRandom(dim, dim, lo, hi, rng)
		var b *mat.Dense
		if op.Binary() {
			b = mat.NewRandom(dim, dim, lo, hi, rng)
		}
		c := mat.New(dim, dim)
		return kernelCall{
			run: func(exec workerpool.Executor) error {
				return elementwise.Apply(exec, op, scalarOperand, a, b, c)
			},
			out: c,
		}
	}
}

// benchmarkNames lists every sweepable op in sorted order.
func benchmarkNames() []string {
	names := make([]string, 0, len(benchmarks))
	for n := range benchmarks {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func lookupBenchmark(name string) (inputs, error) {
	if in, ok := benchmarks[strings.ToLower(strings.TrimSpace(name))]; ok {
		return in, nil
	}
	return nil, fmt.Errorf("unknown op %q (want one of %s)", name, strings.Join(benchmarkNames(), ", "))
}
