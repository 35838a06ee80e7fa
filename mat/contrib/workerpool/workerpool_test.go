// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	assert.Equal(t, 4, pool.NumWorkers())
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	assert.Equal(t, runtime.GOMAXPROCS(0), pool.NumWorkers())
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := range n {
		require.Equal(t, i*2, results[i], "results[%d]", i)
	}
}

// recordRanges collects every (start, end) handed out by one call.
func recordRanges(run func(fn func(start, end int))) [][2]int {
	var mu sync.Mutex
	var ranges [][2]int
	run(func(start, end int) {
		mu.Lock()
		ranges = append(ranges, [2]int{start, end})
		mu.Unlock()
	})
	sort.Slice(ranges, func(i, j int) bool { return ranges[i][0] < ranges[j][0] })
	return ranges
}

func TestParallelForRangesAreDisjointAndCovering(t *testing.T) {
	pool := New(7)
	defer pool.Close()

	for _, n := range []int{1, 6, 7, 8, 99, 1000} {
		ranges := recordRanges(func(fn func(start, end int)) { pool.ParallelFor(n, fn) })
		require.NotEmpty(t, ranges)
		assert.LessOrEqual(t, len(ranges), 7, "n=%d", n)
		next := 0
		for _, r := range ranges {
			require.Equal(t, next, r[0], "n=%d: gap or overlap at %v", n, r)
			require.Less(t, r[0], r[1], "n=%d: empty range", n)
			next = r[1]
		}
		assert.Equal(t, n, next, "n=%d: ranges must end at n", n)
	}
}

func TestParallelForAlignedBoundaries(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	const align = 8
	for _, n := range []int{5, 17, 100, 1001} {
		ranges := recordRanges(func(fn func(start, end int)) { pool.ParallelForAligned(n, align, fn) })
		for i, r := range ranges {
			assert.Zero(t, r[0]%align, "n=%d: start %d not aligned", n, r[0])
			if i < len(ranges)-1 {
				assert.Zero(t, r[1]%align, "n=%d: interior end %d not aligned", n, r[1])
			}
		}
		assert.Equal(t, n, ranges[len(ranges)-1][1])
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelForAtomic(n, func(i int) {
		results[i] = i * 2
	})

	for i := range n {
		require.Equal(t, i*2, results[i], "results[%d]", i)
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	// n smaller than workers
	n := 3
	var count atomic.Int32

	pool.ParallelFor(n, func(start, end int) {
		count.Add(int32(end - start))
	})

	assert.Equal(t, int32(n), count.Load())
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})
	pool.ParallelForAtomic(0, func(int) {
		called = true
	})

	assert.False(t, called, "n=0 must not call fn")
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	assert.NotPanics(t, pool.Close)
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)

	// Sequential fallback.
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := range n {
		require.Equal(t, i*2, results[i], "results[%d]", i)
	}
}

func TestClosedPoolRunsOnCaller(t *testing.T) {
	pool := New(4)
	pool.Close()

	ranges := recordRanges(func(fn func(start, end int)) { pool.ParallelForAligned(100, 8, fn) })
	assert.Equal(t, [][2]int{{0, 100}}, ranges)

	var order []int
	pool.ParallelForAtomic(5, func(i int) { order = append(order, i) })
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order, "closed pool must not hand work to workers")
}

func TestSerial(t *testing.T) {
	var s Serial
	assert.Equal(t, 1, s.NumWorkers())

	ranges := recordRanges(func(fn func(start, end int)) { s.ParallelFor(10, fn) })
	assert.Equal(t, [][2]int{{0, 10}}, ranges)

	ranges = recordRanges(func(fn func(start, end int)) { ForAligned(s, 10, 8, fn) })
	assert.Equal(t, [][2]int{{0, 10}}, ranges)
}

func TestDefaultAndSetDefault(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	prev := SetDefault(pool)
	t.Cleanup(func() { SetDefault(prev) })

	assert.Same(t, pool, Default())
	assert.Same(t, pool, Resolve(nil))

	var s Serial
	assert.Equal(t, s, Resolve(s))
}

func TestDefaultCreatedOnFirstUse(t *testing.T) {
	prev := SetDefault(nil)
	t.Cleanup(func() {
		if p, ok := SetDefault(prev).(*Pool); ok {
			p.Close()
		}
	})

	exec := Default()
	require.NotNil(t, exec)
	assert.Equal(t, exec, Default(), "default executor must be reused")
}

func TestForAtomic(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	for name, exec := range map[string]Executor{"pool": pool, "serial": Serial{}} {
		t.Run(name, func(t *testing.T) {
			counts := make([]atomic.Int32, 50)
			ForAtomic(exec, len(counts), func(i int) {
				counts[i].Add(1)
			})
			for i := range counts {
				assert.Equal(t, int32(1), counts[i].Load(), "index %d", i)
			}
		})
	}

	var called bool
	ForAtomic(pool, 0, func(int) { called = true })
	assert.False(t, called)
}

func TestCacheLineFloats(t *testing.T) {
	assert.GreaterOrEqual(t, CacheLineSize, 8)
	assert.Equal(t, CacheLineSize/8, CacheLineFloats)
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0) // Use GOMAXPROCS
	defer pool.Close()

	n := 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelFor(n, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

func BenchmarkParallelForAtomic(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelForAtomic(n, func(i int) {
			_ = i * i
		})
	}
}
