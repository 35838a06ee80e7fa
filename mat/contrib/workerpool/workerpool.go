// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides the persistent, reusable worker pool every
// kernel in mat/contrib dispatches onto. A Pool is created once and reused
// across many calls, so a kernel call costs a few channel sends instead of
// a goroutine spawn per row.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, layer := range layers {
//	    matmul.MulReorder(pool, layer.W, x, y)
//	}
//
// Kernels accept any Executor. Passing nil selects the process-wide pool
// returned by Default.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/gitia/froog/internal/logging"
	"golang.org/x/sys/cpu"
)

// Executor runs index ranges in parallel and joins before returning.
//
// Implementations must invoke fn on disjoint [start, end) ranges that
// together cover [0, n) exactly once, and must not return until every
// invocation has completed.
type Executor interface {
	NumWorkers() int
	ParallelFor(n int, fn func(start, end int))
}

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single range of one parallel operation.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	logging.WithField("workers", numWorkers).Debug("workerpool: started")
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe, but Close must not run concurrently
// with an in-flight ParallelFor, ParallelForAligned or ParallelForAtomic
// call on the same pool: the call may already be past its closed check and
// would then send on a closed channel.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
		logging.WithField("workers", p.numWorkers).Debug("workerpool: closed")
	})
}

// ParallelFor executes fn over [0, n) using the worker pool, one contiguous
// range per worker. Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForAligned(n, 1, fn)
}

// ParallelForAligned is ParallelFor with every range boundary (except the
// final end) falling on a multiple of align. Kernels writing into a flat
// []float64 pass CacheLineFloats so no two workers write to the same cache
// line.
func (p *Pool) ParallelForAligned(n, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if align < 1 {
		align = 1
	}

	if p.closed.Load() {
		// Fallback to sequential if pool is closed
		fn(0, n)
		return
	}

	chunk := (n + p.numWorkers - 1) / p.numWorkers
	chunk = (chunk + align - 1) / align * align
	workers := (n + chunk - 1) / chunk

	if workers == 1 {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := range workers {
		start := i * chunk
		end := min(start+chunk, n)
		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// paddedCounter keeps the shared work index on its own cache line so the
// workers polling it do not invalidate neighbouring data.
type paddedCounter struct {
	_    cpu.CacheLinePad
	next atomic.Int64
	_    cpu.CacheLinePad
}

// ParallelForAtomic executes fn for each index in [0, n) using atomic work
// stealing. This provides better load balancing when work per item varies.
// Blocks until all work completes.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	counter := new(paddedCounter)
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					idx := int(counter.next.Add(1)) - 1
					if idx >= n {
						return
					}
					fn(idx)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
