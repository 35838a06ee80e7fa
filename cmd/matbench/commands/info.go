// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"runtime"

	"github.com/gitia/froog/mat"
	"github.com/gitia/froog/mat/contrib/elementwise"
	"github.com/gitia/froog/mat/contrib/matmul"
	"github.com/gitia/froog/mat/contrib/matvec"
	"github.com/gitia/froog/mat/contrib/workerpool"
	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show CPU and executor information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			mode := "pool"
			if _, ok := a.exec.(workerpool.Serial); ok {
				mode = "serial"
			}
			fmt.Fprintf(out, "Platform:         %s/%s (%s)\n", runtime.GOOS, runtime.GOARCH, runtime.Version())
			fmt.Fprintf(out, "CPU features:     %s\n", mat.FeatureString())
			fmt.Fprintf(out, "Cache line:       %d bytes (%d float64)\n", workerpool.CacheLineSize, workerpool.CacheLineFloats)
			fmt.Fprintf(out, "GOMAXPROCS:       %d\n", runtime.GOMAXPROCS(0))
			fmt.Fprintf(out, "Default workers:  %d\n", mat.Parallelism())
			fmt.Fprintf(out, "Executor:         %s, %d workers\n", mode, a.exec.NumWorkers())
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Parallel thresholds:")
			fmt.Fprintf(out, "  elementwise     %d elements\n", elementwise.MinParallelElements)
			fmt.Fprintf(out, "  matvec          %d multiply-adds\n", matvec.MinParallelOps)
			fmt.Fprintf(out, "  matmul          %d multiply-adds\n", matmul.MinParallelOps)
			fmt.Fprintf(out, "  transpose       %d elements\n", matmul.MinTransposeParallelOps)
			return nil
		},
	}
}
