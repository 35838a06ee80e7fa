// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

// Package commands implements the matbench command tree.
package commands

import (
	"github.com/gitia/froog/internal/config"
	"github.com/gitia/froog/internal/logging"
	"github.com/gitia/froog/mat/contrib/workerpool"
	"github.com/spf13/cobra"
)

// Version is the matbench release, overridable with -ldflags.
var Version = "0.1.0"

// flagKeys maps config keys to the flag names that may override them. Only
// flags defined on the running command are bound.
var flagKeys = map[string]string{
	"parallel.workers":  "workers",
	"parallel.disabled": "no-parallel",
	"bench.ops":         "ops",
	"bench.sizes":       "sizes",
	"bench.repeat":      "repeat",
	"bench.seed":        "seed",
	"bench.min":         "min",
	"bench.max":         "max",
	"bench.tolerance":   "tolerance",
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg  *config.Config
	exec workerpool.Executor
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	defaults := config.DefaultConfig()

	root := &cobra.Command{
		Use:   "matbench",
		Short: "Benchmark the parallel dense matrix kernels",
		Long: `matbench times the element-wise, matrix-vector and matrix-matrix
kernels over a sweep of square sizes, printing the elapsed time and the
element sum of every result so runs can be compared across machines and
worker counts.`,
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.teardown() },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./matbench.yaml or $HOME/.matbench/matbench.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.IntP("workers", "w", defaults.Parallel.Workers, "worker count (0 = GOMAXPROCS)")
	pf.Bool("no-parallel", defaults.Parallel.Disabled, "run every kernel on the calling goroutine")

	root.AddCommand(
		newSweepCmd(a),
		newVerifyCmd(a),
		newInfoCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var binds []config.FlagBinding
	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			binds = append(binds, config.FlagBinding{Key: key, Flag: f})
		}
	}

	cfg, err := config.Load(a.cfgFile, binds...)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Init(cfg.Logging.Level, cfg.Logging.File, cfg.Logging.Console); err != nil {
		return err
	}

	a.cfg = cfg
	if cfg.Parallel.Disabled {
		a.exec = workerpool.Serial{}
	} else {
		a.exec = workerpool.New(cfg.Parallel.Workers)
	}
	logging.WithField("workers", a.exec.NumWorkers()).Debugf("matbench: %s", cmd.Name())
	return nil
}

func (a *app) teardown() {
	if p, ok := a.exec.(*workerpool.Pool); ok {
		p.Close()
	}
	if err := logging.Close(); err != nil {
		logging.Warnf("matbench: closing log file: %v", err)
	}
}
