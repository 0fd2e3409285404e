package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_ExecutesAllTasks(t *testing.T) {
	pool := NewWorkerPool(4)

	var counter int64
	for i := 0; i < 100; i++ {
		if !pool.Submit(func() {
			atomic.AddInt64(&counter, 1)
		}) {
			t.Fatal("Submit returned false on open pool")
		}
	}

	pool.Wait()

	if counter != 100 {
		t.Errorf("Expected 100 executed tasks, got %d", counter)
	}
}

func TestWorkerPool_ClampedWorkerCount(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	if pool.Workers() != 1 {
		t.Errorf("Expected worker count clamped to 1, got %d", pool.Workers())
	}
}

func TestWorkerPool_SubmitAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	if pool.Submit(func() {}) {
		t.Error("Submit should return false after Close")
	}
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close() // must not panic
}

func TestWorkerPool_PanicRecovery(t *testing.T) {
	pool := NewWorkerPool(2)

	var done int64
	pool.Submit(func() { panic("boom") })
	pool.Submit(func() { atomic.AddInt64(&done, 1) })

	pool.Wait()

	if done != 1 {
		t.Error("Worker should survive a panicking task and run the next one")
	}
}

func TestWorkerPool_ConcurrentSubmitters(t *testing.T) {
	pool := NewWorkerPool(8)

	var counter int64
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				pool.Submit(func() { atomic.AddInt64(&counter, 1) })
			}
		}()
	}

	wg.Wait()
	pool.Wait()

	if counter != 500 {
		t.Errorf("Expected 500 executed tasks, got %d", counter)
	}
}
