// Copyright 2025 go-highway Authors
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

// Package workerpool runs accuracy sweeps on a fixed set of goroutines.
//
// Reference evaluations differ widely in cost (a Fresnel series at x = 16
// needs hundreds of 600-bit terms, a double-double sine a few dozen flops),
// so work is handed out in small batches that idle workers claim in turn.
//
// Usage:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	errs := workerpool.Map(pool, len(xs), 64, func(i int) float64 {
//	    return ulpError(eval(xs[i]), ref(xs[i]))
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of persistent workers. A Pool may be shared by consecutive
// sweeps; Close releases the workers.
type Pool struct {
	workers int
	tasks   chan task

	// mu guards closed and the channel: Batches sends under the read lock,
	// Close closes under the write lock.
	mu     sync.RWMutex
	closed bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool with the given number of workers, or GOMAXPROCS workers
// when workers <= 0.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		tasks:   make(chan task, workers),
	}
	for i := 0; i < workers; i++ {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers after queued work finishes. It is safe to call
// more than once and concurrently with Batches; a closed pool runs work on
// the calling goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.tasks)
}

// Batches calls fn on consecutive ranges [start, end) of at most batch
// indices covering [0, n), and returns when every range is done.
func (p *Pool) Batches(n, batch int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batch = max(batch, 1)
	numBatches := (n + batch - 1) / batch
	workers := min(p.workers, numBatches)
	if workers == 1 {
		fn(0, n)
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		fn(0, n)
		return
	}
	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		p.tasks <- task{
			run: func() {
				for {
					start := int(next.Add(1)-1) * batch
					if start >= n {
						return
					}
					fn(start, min(start+batch, n))
				}
			},
			done: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// Map returns fn(i) for i in [0, n), evaluated in batches on the pool.
func Map[T any](p *Pool, n, batch int, fn func(i int) T) []T {
	out := make([]T, max(n, 0))
	p.Batches(n, batch, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = fn(i)
		}
	})
	return out
}
