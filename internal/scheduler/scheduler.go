package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/osse101/BrandishSpin_Go/internal/logger"
	"github.com/osse101/BrandishSpin_Go/internal/worker"
)

const (
	LogMsgJobScheduled    = "Job scheduled"
	LogMsgJobSkipped      = "Scheduled job skipped"
	LogMsgStopTimeout     = "Scheduler stop timed out waiting for trigger"
	LogMsgCronError       = "Cron error"
	ErrMsgInvalidSchedule = "invalid schedule"
)

// Scheduler hands jobs to the worker pool on cron schedules. It never runs
// jobs itself, so a slow job only delays its own next run.
type Scheduler struct {
	cron       *cron.Cron
	workerPool *worker.Pool
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithLogger(cronLogger{})),
		workerPool: pool,
	}
}

// Schedule registers a job under a cron expression or descriptor such as "@every 1m".
// An empty spec disables the job.
func (s *Scheduler) Schedule(spec string, job worker.Job) error {
	if spec == "" {
		return nil
	}
	_, err := s.cron.AddFunc(spec, func() {
		if !s.workerPool.TryEnqueue(job) {
			logger.Warn(LogMsgJobSkipped, "spec", spec)
		}
	})
	if err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgInvalidSchedule, spec, err)
	}
	logger.Info(LogMsgJobScheduled, "spec", spec)
	return nil
}

// Start begins firing schedules
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops firing schedules and waits for in-progress triggers
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		logger.Warn(LogMsgStopTimeout)
	}
}

// cronLogger routes cron's own logging into slog
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Debug(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Error(LogMsgCronError, append([]interface{}{"msg", msg, "error", err}, keysAndValues...)...)
}
