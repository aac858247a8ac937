package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/BrandishSpin_Go/internal/logger"
	"github.com/osse101/BrandishSpin_Go/internal/metrics"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Named jobs are labelled by name in metrics and logs
type Named interface {
	Name() string
}

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers  int
	timeout  time.Duration
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		timeout:  DefaultJobTimeout,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers
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

func (p *Pool) run(job Job) {
	name := jobName(job)
	ctx, cancel := context.WithTimeout(logger.WithRequestID(context.Background(), logger.GenerateRequestID()), p.timeout)
	defer cancel()
	log := logger.FromContext(ctx)

	start := time.Now()
	err := safeProcess(ctx, job)
	metrics.JobRunDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.JobRunsTotal.WithLabelValues(name, metrics.StatusError).Inc()
		log.Error(LogMsgWorkerJobFailed, "job", name, "error", err)
		return
	}
	metrics.JobRunsTotal.WithLabelValues(name, metrics.StatusSuccess).Inc()
}

// safeProcess keeps a panicking job from taking its worker down
func safeProcess(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgWorkerJobPanic, "panic", r)
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()
	return job.Process(ctx)
}

func jobName(job Job) string {
	if n, ok := job.(Named); ok {
		return n.Name()
	}
	return JobNameUnnamed
}

// Enqueue blocks until the job is queued or the pool stops
func (p *Pool) Enqueue(job Job) {
	select {
	case p.jobQueue <- job:
	case <-p.quit:
		logger.Warn(LogMsgPoolStopped, "job", jobName(job))
	}
}

// TryEnqueue queues the job unless the queue is full
func (p *Pool) TryEnqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.Warn(LogMsgQueueFull, "job", jobName(job))
		return false
	}
}

// Stop stops the workers and waits for running jobs to finish. Queued jobs are dropped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
		p.wg.Wait()
		logger.Info(LogMsgWorkerPoolClosed)
	})
}
