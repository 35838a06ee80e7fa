// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

// Command matbench times the parallel matrix kernels over a sweep of sizes
// and checks the multiplication variants against gonum.
package main

import (
	"os"

	"github.com/gitia/froog/cmd/matbench/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
