// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"sync"
	"unsafe"

	"github.com/gitia/froog/internal/logging"
	"github.com/gitia/froog/mat"
	"golang.org/x/sys/cpu"
)

// CacheLineSize is the cache line size in bytes of the running CPU, as
// reported by golang.org/x/sys/cpu.
var CacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// CacheLineFloats is the number of float64 values per cache line.
var CacheLineFloats = max(CacheLineSize/8, 1)

// Serial runs every range on the calling goroutine.
type Serial struct{}

// NumWorkers always returns 1.
func (Serial) NumWorkers() int { return 1 }

// ParallelFor calls fn(0, n) once when n > 0.
func (Serial) ParallelFor(n int, fn func(start, end int)) {
	if n > 0 {
		fn(0, n)
	}
}

var (
	defaultMu   sync.Mutex
	defaultExec Executor
)

// Default returns the process-wide executor, creating it on first use.
// It is a Pool sized by mat.Parallelism, or Serial when that is 1. The
// pool lives until the process exits.
func Default() Executor {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultExec == nil {
		n := mat.Parallelism()
		if n <= 1 {
			defaultExec = Serial{}
		} else {
			defaultExec = New(n)
		}
		logging.WithField("workers", n).Debug("workerpool: default executor ready")
	}
	return defaultExec
}

// SetDefault replaces the process-wide executor and returns the previous
// one (nil if none was created yet). The caller owns the previous executor
// and is responsible for closing it. Passing nil makes the next Default
// call create a fresh executor.
func SetDefault(exec Executor) Executor {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultExec
	defaultExec = exec
	return prev
}

// Resolve returns exec, or Default when exec is nil.
func Resolve(exec Executor) Executor {
	if exec == nil {
		return Default()
	}
	return exec
}

type alignedExecutor interface {
	ParallelForAligned(n, align int, fn func(start, end int))
}

// ForAligned splits [0, n) across exec with range boundaries on multiples of
// align when exec supports it, and falls back to ParallelFor otherwise.
func ForAligned(exec Executor, n, align int, fn func(start, end int)) {
	if a, ok := exec.(alignedExecutor); ok {
		a.ParallelForAligned(n, align, fn)
		return
	}
	exec.ParallelFor(n, fn)
}

type atomicExecutor interface {
	ParallelForAtomic(n int, fn func(i int))
}

// ForAtomic calls fn(i) once for every i in [0, n). Executors that support
// work stealing hand indices out one at a time, which balances items of
// uneven cost; others split [0, n) into contiguous ranges.
func ForAtomic(exec Executor, n int, fn func(i int)) {
	if a, ok := exec.(atomicExecutor); ok {
		a.ParallelForAtomic(n, fn)
		return
	}
	exec.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}
