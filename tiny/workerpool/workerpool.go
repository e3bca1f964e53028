// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs independent sort verification cases on a
// persistent set of goroutines. A Pool is created once and reused for every
// batch of cases, so a verification matrix does not pay goroutine spawn cost
// per case.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	errs := pool.Collect(len(cases), func(i int) error {
//	    return runCase(cases[i])
//	})
//
// Each case must own its data: the pool never shares a slice between
// workers, and the sort engines themselves are single threaded.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one worker's share of a batch.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
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
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Pending work completes.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ForEach calls fn(i) for every i in [0, n). Workers grab the next index
// atomically, which balances cases of very different sizes. Blocks until all
// calls return.
func (p *Pool) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)

	// Sequential if the pool is closed or there is nothing to share.
	if p.closed.Load() || workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var nextIdx atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					idx := int(nextIdx.Add(1)) - 1
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

// Collect calls fn(i) for every i in [0, n) and returns the errors indexed by
// i. A panic inside fn is recovered and reported as the error of that index,
// so one misbehaving case cannot take down the pool.
func (p *Pool) Collect(n int, fn func(i int) error) []error {
	if n <= 0 {
		return nil
	}

	errs := make([]error, n)
	p.ForEach(n, func(i int) {
		defer func() {
			if r := recover(); r != nil {
				errs[i] = errors.Errorf("case %d panicked: %v", i, r)
			}
		}()
		errs[i] = fn(i)
	})
	return errs
}
