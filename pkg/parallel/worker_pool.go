// Package parallel provides the worker pool used to spread per-source
// betweenness accumulation across goroutines. Parallelism here is purely a
// performance option: every algorithm in pkg/analytics is correct when run
// on a single worker.
package parallel

import (
	"sync"

	"github.com/tburke/sociograph/pkg/logging"
)

// WorkerPool manages a fixed set of worker goroutines consuming a shared
// task queue.
type WorkerPool struct {
	workers int
	tasks   chan func()
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex // protects tasks from concurrent close during send
	closed  bool
}

// NewWorkerPool creates a pool with the given number of workers. Counts
// below 1 are clamped to 1.
func NewWorkerPool(workers int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}

	pool := &WorkerPool{
		workers: workers,
		tasks:   make(chan func(), workers*2),
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}
	return pool
}

// Workers returns the configured worker count.
func (wp *WorkerPool) Workers() int {
	return wp.workers
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for task := range wp.tasks {
		// A panicking task must not take the worker down with it
		func() {
			defer func() {
				if r := recover(); r != nil {
					logging.ErrorLog("worker panic recovered",
						logging.Component("parallel"),
						logging.Any("panic", r),
					)
				}
			}()
			task()
		}()
	}
}

// Submit adds a task to the pool. Returns false if the pool is closed.
func (wp *WorkerPool) Submit(task func()) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	if wp.closed {
		return false
	}
	wp.tasks <- task
	return true
}

// Close shuts down the pool and blocks until all submitted tasks finish.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		close(wp.tasks)
		wp.mu.Unlock()
	})
	wp.wg.Wait()
}

// Wait is an alias for Close: it drains the queue and stops the workers.
func (wp *WorkerPool) Wait() {
	wp.Close()
}
