package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/BrandishSpin_Go/internal/logger"
)

type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
	due      time.Time
}

// ResilientPublisher publishes to a Bus and retries failures in the background
// with exponential backoff. Events that exhaust their retries, overflow the
// queue, or are still queued at shutdown go to the dead-letter file.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	closeOnce  sync.Once
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	rp.wg.Add(1)
	go rp.retryWorker()
	return rp, nil
}

// PublishWithRetry publishes once synchronously and queues the event for
// retry on failure. It never blocks on the retry queue.
func (rp *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := rp.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	rp.enqueue(retryEntry{
		event:    event,
		attempts: 1,
		lastErr:  err,
		due:      time.Now().Add(CalculateRetryDelay(rp.retryDelay, 1)),
	})
}

func (rp *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case <-rp.shutdown:
		rp.writeDeadLetter(entry)
		return
	default:
	}

	select {
	case rp.retryQueue <- entry:
	default:
		logger.Warn(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		rp.writeDeadLetter(entry)
	}
}

func (rp *ResilientPublisher) retryWorker() {
	defer rp.wg.Done()

	for {
		select {
		case <-rp.shutdown:
			rp.drain()
			return
		case entry := <-rp.retryQueue:
			if wait := time.Until(entry.due); wait > 0 {
				timer := time.NewTimer(wait)
				select {
				case <-timer.C:
				case <-rp.shutdown:
					timer.Stop()
					rp.retry(entry, true)
					rp.drain()
					return
				}
			}
			rp.retry(entry, false)
		}
	}
}

// retry makes one attempt. In final mode a failure is dead-lettered
// instead of requeued.
func (rp *ResilientPublisher) retry(entry retryEntry, final bool) {
	err := rp.bus.Publish(context.Background(), entry.event)
	entry.attempts++
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempts", entry.attempts)
		return
	}
	entry.lastErr = err

	if final || entry.attempts > rp.maxRetries {
		logger.Warn(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempts)
		rp.writeDeadLetter(entry)
		return
	}

	logger.Debug(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempts", entry.attempts, "error", err)
	entry.due = time.Now().Add(CalculateRetryDelay(rp.retryDelay, entry.attempts))
	rp.enqueue(entry)
}

// drain gives each queued event one last attempt
func (rp *ResilientPublisher) drain() {
	n := 0
	for {
		select {
		case entry := <-rp.retryQueue:
			rp.retry(entry, true)
			n++
		default:
			if n > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", n)
			}
			return
		}
	}
}

func (rp *ResilientPublisher) writeDeadLetter(entry retryEntry) {
	if rp.deadLetter == nil {
		return
	}
	if err := rp.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", entry.event.Type, "error", err)
	}
}

// Shutdown stops the retry worker after draining the queue
func (rp *ResilientPublisher) Shutdown(ctx context.Context) error {
	rp.closeOnce.Do(func() { close(rp.shutdown) })

	done := make(chan struct{})
	go func() {
		rp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}

	if rp.deadLetter != nil {
		return rp.deadLetter.Close()
	}
	return nil
}
