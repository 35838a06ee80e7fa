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

package mat

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/cpu"
)

// Environment knobs read when the process-wide executor is first created.
const (
	// EnvNoParallel forces the default executor to run every kernel on the
	// calling goroutine. Useful for debugging and for serial baselines.
	EnvNoParallel = "MAT_NO_PARALLEL"

	// EnvWorkers overrides the default worker count (GOMAXPROCS otherwise).
	EnvWorkers = "MAT_WORKERS"
)

// NoParallelEnv checks if MAT_NO_PARALLEL is set.
// Any non-empty value counts as true unless it parses as a false bool.
func NoParallelEnv() bool {
	val := os.Getenv(EnvNoParallel)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Parallelism returns the number of workers the default executor should use:
// 1 when MAT_NO_PARALLEL is set, MAT_WORKERS when it is a positive integer,
// and GOMAXPROCS otherwise.
func Parallelism() int {
	if NoParallelEnv() {
		return 1
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return runtime.GOMAXPROCS(0)
}

// Features lists the CPU features relevant to float64 throughput that were
// detected at startup, e.g. "avx2", "fma", "asimd".
func Features() []string {
	var out []string
	switch runtime.GOARCH {
	case "amd64", "386":
		flags := []struct {
			name string
			ok   bool
		}{
			{"sse2", cpu.X86.HasSSE2},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
		}
		for _, f := range flags {
			if f.ok {
				out = append(out, f.name)
			}
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			out = append(out, "asimd")
		}
		if cpu.ARM64.HasFPHP {
			out = append(out, "fphp")
		}
		if cpu.ARM64.HasSVE {
			out = append(out, "sve")
		}
	}
	return out
}

// FeatureString joins Features with commas, or returns "scalar" when none
// were detected.
func FeatureString() string {
	f := Features()
	if len(f) == 0 {
		return "scalar"
	}
	return strings.Join(f, ",")
}
