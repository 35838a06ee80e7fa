// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

// Package config loads matbench settings from defaults, an optional YAML
// file and MATBENCH_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. MATBENCH_BENCH_SEED.
const EnvPrefix = "MATBENCH"

// Config represents the benchmark configuration.
type Config struct {
	Bench    BenchConfig    `mapstructure:"bench"`
	Parallel ParallelConfig `mapstructure:"parallel"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type BenchConfig struct {
	Ops       []string `mapstructure:"ops"`
	Sizes     []int    `mapstructure:"sizes"`
	Repeat    int      `mapstructure:"repeat"`
	Seed      uint64   `mapstructure:"seed"`
	Min       float64  `mapstructure:"min"`
	Max       float64  `mapstructure:"max"`
	Tolerance float64  `mapstructure:"tolerance"`
}

// ParallelConfig selects the executor. Workers <= 0 means GOMAXPROCS.
type ParallelConfig struct {
	Workers  int  `mapstructure:"workers"`
	Disabled bool `mapstructure:"disabled"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	File    string `mapstructure:"file"`
	Console bool   `mapstructure:"console"`
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Bench: BenchConfig{
			Ops:       []string{"matmul-reorder"},
			Sizes:     []int{6, 20, 30, 40, 50, 70, 100, 150, 200, 300, 400, 600, 800, 1000},
			Repeat:    1,
			Seed:      1,
			Min:       -200,
			Max:       200,
			Tolerance: 1e-6,
		},
		Parallel: ParallelConfig{
			Workers: 0,
		},
		Logging: LoggingConfig{
			Level:   "warn",
			Console: true,
		},
	}
}

// FlagBinding ties a config key such as "bench.sizes" to a command-line
// flag. A flag the user set wins over the environment and the file.
type FlagBinding struct {
	Key  string
	Flag *pflag.Flag
}

// Load loads configuration from file, environment, and defaults, then
// applies any bound flags. A missing file is only an error when cfgFile
// names it explicitly.
func Load(cfgFile string, flags ...FlagBinding) (*Config, error) {
	v := viper.New()

	cfg := DefaultConfig()
	setDefaults(v, cfg)

	for _, b := range flags {
		if b.Flag == nil {
			continue
		}
		if err := v.BindPFlag(b.Key, b.Flag); err != nil {
			return nil, fmt.Errorf("binding flag %q: %w", b.Flag.Name, err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".matbench"))
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("matbench")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Bench.Sizes) == 0 {
		return errors.New("bench.sizes must not be empty")
	}
	for _, s := range c.Bench.Sizes {
		if s <= 0 {
			return fmt.Errorf("bench.sizes must be positive, got %d", s)
		}
	}
	if c.Bench.Repeat < 1 {
		return errors.New("bench.repeat must be at least 1")
	}
	if c.Bench.Min >= c.Bench.Max {
		return fmt.Errorf("bench.min (%g) must be below bench.max (%g)", c.Bench.Min, c.Bench.Max)
	}
	if c.Bench.Tolerance < 0 {
		return errors.New("bench.tolerance must not be negative")
	}

	validLevels := []string{"trace", "debug", "info", "warn", "error"}
	if !slices.Contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of: %v", validLevels)
	}
	return nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("bench.ops", cfg.Bench.Ops)
	v.SetDefault("bench.sizes", cfg.Bench.Sizes)
	v.SetDefault("bench.repeat", cfg.Bench.Repeat)
	v.SetDefault("bench.seed", cfg.Bench.Seed)
	v.SetDefault("bench.min", cfg.Bench.Min)
	v.SetDefault("bench.max", cfg.Bench.Max)
	v.SetDefault("bench.tolerance", cfg.Bench.Tolerance)

	v.SetDefault("parallel.workers", cfg.Parallel.Workers)
	v.SetDefault("parallel.disabled", cfg.Parallel.Disabled)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.console", cfg.Logging.Console)
}
