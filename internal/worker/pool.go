package worker

import (
	"context"
	"sync"
	"time"

	"github.com/luckstr/luckstr-go/internal/logger"
)

// jobTimeout bounds a single job execution. Draw jobs talk to relays,
// LNURL endpoints and the NWC wallet, and a hung job would block its
// worker and eventually the scheduler ticker behind the queue.
const jobTimeout = 5 * time.Minute

// Job is a unit of scheduled work, such as a round announcement or a draw.
type Job interface {
	Process(ctx context.Context) error
}

// Pool runs queued jobs on a fixed set of worker goroutines.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
}

// NewPool creates a pool with the given worker count and queue capacity.
func NewPool(workers int, queueSize int) *Pool {
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			return
		}
	}
}

// run executes one job under the pool timeout. Failures are logged and
// absorbed so a bad job never takes a worker down with it.
func (p *Pool) run(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job to the queue, blocking while the queue is full.
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// Stop signals the workers to exit and waits for them to finish.
func (p *Pool) Stop() {
	close(p.quit)
	p.wg.Wait()
}
