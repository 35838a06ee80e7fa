// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gitia/froog/internal/config"
	"github.com/gitia/froog/internal/logging"
	"github.com/gitia/froog/mat"
	"github.com/gitia/froog/mat/contrib/matmul"
	"github.com/gitia/froog/mat/contrib/matvec"
	"github.com/spf13/cobra"
	gmat "gonum.org/v1/gonum/mat"
)

var defaultShapes = []string{"1x1x1", "6x6x6", "7x13x5", "64x64x64", "100x37x81", "257x130x65"}

// errVerifyFailed is returned when any variant exceeds the tolerance.
var errVerifyFailed = errors.New("verification failed")

// shape is an m×k by k×n product.
type shape struct{ m, k, n int }

func (s shape) String() string { return fmt.Sprintf("%dx%dx%d", s.m, s.k, s.n) }

func parseShape(s string) (shape, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 3 {
		return shape{}, fmt.Errorf("shape %q: want MxKxN", s)
	}
	var dims [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v <= 0 {
			return shape{}, fmt.Errorf("shape %q: %q is not a positive integer", s, p)
		}
		dims[i] = v
	}
	return shape{dims[0], dims[1], dims[2]}, nil
}

func newVerifyCmd(a *app) *cobra.Command {
	var shapes []string
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every multiplication variant against gonum",
		Long: `verify multiplies random matrices with each variant and with
gonum's mat.Dense.Mul, and fails when the largest element difference relative
to the largest element of the reference exceeds --tolerance. The matvec kernel
is checked against gonum's MulVec on the same operands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := make([]shape, len(shapes))
			for i, s := range shapes {
				sh, err := parseShape(s)
				if err != nil {
					return err
				}
				parsed[i] = sh
			}
			return a.runVerify(cmd, parsed)
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&shapes, "shapes", defaultShapes, "products to check, as MxKxN")
	f.Float64("tolerance", defaults.Bench.Tolerance, "maximum relative error")
	f.Uint64("seed", defaults.Bench.Seed, "PRNG seed")
	return cmd
}

func (a *app) runVerify(cmd *cobra.Command, shapes []shape) error {
	b := a.cfg.Bench
	out := cmd.OutOrStdout()
	failed := 0
	report := func(name string, sh shape, rel float64) {
		status := "ok"
		if rel > b.Tolerance || math.IsNaN(rel) {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(out, "%-16s %-12s rel_err=%.3g %s\n", name, sh, rel, status)
	}

	for _, sh := range shapes {
		rng := mat.NewSeededRand(b.Seed)
		x := mat.NewRandom(sh.m, sh.k, b.Min, b.Max, rng)
		y := mat.NewRandom(sh.k, sh.n, b.Min, b.Max, rng)
		c0 := mat.NewRandom(sh.m, sh.n, b.Min, b.Max, rng)
		want := reference(x, y)

		xt := mat.New(0, 0)
		if err := matmul.Transpose(a.exec, x, xt); err != nil {
			return err
		}

		for _, v := range matmul.Variants() {
			lhs, c, expect := x, mat.New(0, 0), want
			switch v {
			case matmul.TransAReorder:
				lhs = xt
			case matmul.MultAddReorder:
				c = c0.Clone()
				expect = want.Clone()
				for i, cv := range c0.Data() {
					expect.SetFlat(i, expect.AtFlat(i)+cv)
				}
			}
			if err := matmul.Mul(a.exec, v, lhs, y, c); err != nil {
				return fmt.Errorf("%s %s: %w", v, sh, err)
			}
			report(v.String(), sh, relErr(expect, c))
		}

		vec := mat.NewRandom(sh.k, 1, b.Min, b.Max, rng)
		got := mat.New(0, 0)
		if err := matvec.MatVec(a.exec, x, vec, got); err != nil {
			return fmt.Errorf("matvec %s: %w", sh, err)
		}
		report("matvec", shape{sh.m, sh.k, 1}, relErr(reference(x, vec), got))
	}

	if failed > 0 {
		logging.Errorf("verify: %d checks over tolerance %g", failed, b.Tolerance)
		return fmt.Errorf("%w: %d checks over tolerance", errVerifyFailed, failed)
	}
	logging.Infof("verify: %d shapes ok", len(shapes))
	return nil
}

// reference computes x*y with gonum.
func reference(x, y *mat.Dense) *mat.Dense {
	var p gmat.Dense
	p.Mul(
		gmat.NewDense(x.Rows(), x.Cols(), x.Data()),
		gmat.NewDense(y.Rows(), y.Cols(), y.Data()),
	)
	r, c := p.Dims()
	out := mat.New(r, c)
	for i := range r {
		copy(out.Data()[i*c:(i+1)*c], p.RawRowView(i))
	}
	return out
}

// relErr is max|want-got| scaled by max|want| (or 1 when that is smaller).
func relErr(want, got *mat.Dense) float64 {
	scale := 1.0
	for _, v := range want.Data() {
		scale = max(scale, math.Abs(v))
	}
	return want.MaxAbsDiff(got) / scale
}
