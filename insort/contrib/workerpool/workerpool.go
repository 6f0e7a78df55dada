// Copyright 2025 go-sortbench Authors
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

// Package workerpool runs independent benchmark jobs on a fixed set of
// goroutines.
//
// Workers are started once by New and reused by every call to Run, so a batch
// of experiments does not pay goroutine start-up cost per job:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	err := pool.Run(ctx, len(jobs), func(ctx context.Context, i int) error {
//	    return jobs[i].Do(ctx)
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New starts a pool with numWorkers goroutines. numWorkers <= 0 uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for w := 0; w < numWorkers; w++ {
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

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers. It is safe to call more than once. Run on a closed
// pool executes jobs on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Run calls fn for every index in [0, n), handing indices out one at a time
// to idle workers, and blocks until all started calls return.
//
// After the first error or once ctx is done no new index is started. Run
// returns the first error reported by fn, or ctx.Err() if the context ended
// before every index was started.
func (p *Pool) Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	var (
		nextIdx  atomic.Int64
		stopped  atomic.Bool
		errOnce  sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
		stopped.Store(true)
	}

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		p.workC <- workItem{
			fn: func() {
				for !stopped.Load() {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					if err := ctx.Err(); err != nil {
						fail(err)
						return
					}
					if err := fn(ctx, idx); err != nil {
						fail(err)
						return
					}
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
	return firstErr
}
