package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/BrandishSpin_Go/internal/config"
	"github.com/osse101/BrandishSpin_Go/internal/event"
)

// InitializeEventSystem creates the event bus and the resilient publisher
// that retries failed publishes with exponential backoff and dead-letters
// what it cannot deliver.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	deadLetterPath := cfg.EventDeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = config.DefaultDeadLetterPath
	}

	publisher, err := event.NewResilientPublisher(eventBus, event.RetryMaxAttempts, event.RetryInitialDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", event.RetryMaxAttempts,
		"retry_delay", event.RetryInitialDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, publisher, nil
}
