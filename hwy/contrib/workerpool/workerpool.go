// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for splitting slice
// kernels across cores. A Pool is created once and reused across many calls,
// so bulk operations do not pay for goroutine spawns on every invocation.
//
// Ranges handed to workers start on a multiple of a caller-chosen alignment,
// typically the lane count of a vector, so only the final range can contain
// a partial vector.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(src), 4, func(start, end int) {
//	    math.CbrtSlice(dst[start:end], src[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// MinChunk is the smallest range, in elements, worth handing to a worker.
// Inputs shorter than two chunks run on the calling goroutine.
const MinChunk = 1024

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	start, end int
	fn         func(start, end int)
	barrier    *sync.WaitGroup
}

// New creates a pool with numWorkers persistent goroutines.
// If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn(item.start, item.end)
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. Work already queued completes.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Chunks returns the [start, end) ranges ParallelFor would hand out for n
// elements. Every start is a multiple of align, the ranges are contiguous,
// and together they cover [0, n) exactly.
func (p *Pool) Chunks(n, align int) [][2]int {
	if n <= 0 {
		return nil
	}
	if align <= 0 {
		align = 1
	}

	workers := p.numWorkers
	if p.closed.Load() {
		workers = 1
	}
	// Never hand out ranges below MinChunk, except the single sequential one.
	workers = max(1, min(workers, n/MinChunk))

	// Round the chunk up to a whole number of aligned groups.
	chunk := (n + workers - 1) / workers
	chunk = (chunk + align - 1) / align * align

	ranges := make([][2]int, 0, workers)
	for start := 0; start < n; start += chunk {
		ranges = append(ranges, [2]int{start, min(start+chunk, n)})
	}
	return ranges
}

// ParallelFor calls fn over [0, n) split into contiguous ranges whose starts
// are multiples of align, one range per worker. It blocks until every range
// is done. Small inputs and closed pools run fn(0, n) on the caller.
func (p *Pool) ParallelFor(n, align int, fn func(start, end int)) {
	ranges := p.Chunks(n, align)
	switch len(ranges) {
	case 0:
		return
	case 1:
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(ranges) - 1)
	for _, r := range ranges[1:] {
		p.workC <- workItem{start: r[0], end: r[1], fn: fn, barrier: &wg}
	}
	// The caller takes the first range instead of idling.
	fn(ranges[0][0], ranges[0][1])
	wg.Wait()
}
