package scheduler

import (
	"sync"
	"time"

	"github.com/luckstr/luckstr-go/internal/worker"
)

// Scheduler enqueues recurring jobs onto the worker pool. Announcements
// and draws each get their own interval; the pool serializes execution.
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. The ticker
// goroutine starts immediately and runs until Stop.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// Blocks when the queue is full, which pushes back on the
				// ticker instead of piling up duplicate draw jobs.
				s.workerPool.Enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs and waits for the ticker goroutines.
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
