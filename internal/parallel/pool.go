// Package parallel spreads elementwise array work across a worker pool.
//
// Blend formulas have no cross-element dependencies, so an array can be
// split into contiguous index ranges and processed concurrently. The pool
// is shared by all callers and sized to GOMAXPROCS.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines consuming from a shared queue.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// tasks is the shared work queue.
	tasks chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		tasks:   make(chan func(), workers*4),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			// Drain remaining work before exiting.
			for {
				select {
				case task := <-p.tasks:
					task()
				default:
					return
				}
			}
		case task := <-p.tasks:
			task()
		}
	}
}

// Submit queues a single task. If the pool is closed, the task runs on the
// calling goroutine so work is never dropped.
func (p *Pool) Submit(task func()) {
	if task == nil {
		return
	}
	if !p.running.Load() {
		task()
		return
	}
	select {
	case p.tasks <- task:
	case <-p.done:
		task()
	}
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int { return p.workers }

// Close stops the pool after all queued work completes.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// defaultPool is created on first use and shared by all For calls.
var (
	defaultPool     *Pool
	defaultPoolOnce sync.Once
)

func sharedPool() *Pool {
	defaultPoolOnce.Do(func() {
		defaultPool = NewPool(0)
	})
	return defaultPool
}

// For runs fn over the index range [0, n) split into contiguous chunks of
// at least grain elements, and waits for all chunks to complete.
//
// When n is at most grain, or only one worker is available, fn runs once on
// the calling goroutine with the full range. fn must be safe to call
// concurrently on disjoint ranges.
func For(n, grain int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if grain < 1 {
		grain = 1
	}
	p := sharedPool()
	if n <= grain || p.Workers() == 1 {
		fn(0, n)
		return
	}

	chunks := (n + grain - 1) / grain
	if chunks > p.Workers() {
		chunks = p.Workers()
	}
	size := (n + chunks - 1) / chunks

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		wg.Add(1)
		lo, hi := lo, hi
		p.Submit(func() {
			defer wg.Done()
			fn(lo, hi)
		})
	}
	wg.Wait()
}
