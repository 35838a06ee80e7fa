// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"time"

	"github.com/gitia/froog/internal/config"
	"github.com/gitia/froog/internal/logging"
	"github.com/gitia/froog/mat"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSweepCmd(a *app) *cobra.Command {
	defaults := config.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Time kernels over a range of square sizes",
		Long: `sweep runs each selected op once per size (or --repeat times) on
fresh random inputs and prints one tab-separated line per call:

  op  dim  elapsed  element_sum

Inputs are drawn from a PRNG reseeded with --seed for every size, so the
element sums are reproducible and comparable across worker counts.`,
		Example: `  matbench sweep --ops matmul-reorder,matvec --sizes 100,200,400
  matbench sweep --ops exp --no-parallel`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSweep(cmd)
		},
	}

	f := cmd.Flags()
	f.StringSlice("ops", defaults.Bench.Ops, "ops to run: "+fmt.Sprint(benchmarkNames()))
	f.IntSlice("sizes", defaults.Bench.Sizes, "square matrix sizes")
	f.Int("repeat", defaults.Bench.Repeat, "calls per size")
	f.Uint64("seed", defaults.Bench.Seed, "PRNG seed, reapplied for every size")
	f.Float64("min", defaults.Bench.Min, "lower bound of the random elements")
	f.Float64("max", defaults.Bench.Max, "upper bound of the random elements")
	return cmd
}

func (a *app) runSweep(cmd *cobra.Command) error {
	b := a.cfg.Bench
	ins := make([]inputs, len(b.Ops))
	for i, name := range b.Ops {
		in, err := lookupBenchmark(name)
		if err != nil {
			return err
		}
		ins[i] = in
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "op\tdim\telapsed\telement_sum")
	for i, name := range b.Ops {
		log := logging.WithFields(logrus.Fields{"op": name, "workers": a.exec.NumWorkers()})
		log.Info("sweep: start")
		for _, dim := range b.Sizes {
			for range b.Repeat {
				call := ins[i](dim, mat.NewSeededRand(b.Seed), b.Min, b.Max)
				start := time.Now()
				if err := call.run(a.exec); err != nil {
					return fmt.Errorf("%s dim %d: %w", name, dim, err)
				}
				elapsed := time.Since(start)
				fmt.Fprintf(out, "%s\t%d\t%s\t%g\n", name, dim, elapsed, call.out.Sum())
				log.WithField("dim", dim).Debugf("sweep: %s", elapsed)
			}
		}
	}
	return nil
}
