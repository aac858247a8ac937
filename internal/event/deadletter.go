package event

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/osse101/BrandishSpin_Go/internal/logger"
)

// DeadLetterSchemaVersion is the current version of the dead-letter log format
const DeadLetterSchemaVersion = "1.0"

// DeadLetterWriter appends events that could not be published to a JSONL file
type DeadLetterWriter struct {
	file *os.File
	mu   sync.Mutex
}

// DeadLetterEntry is one line of the dead-letter file
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// NewDeadLetterWriter opens (or creates) the dead-letter file for appending
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, err
	}
	return &DeadLetterWriter{file: f}, nil
}

// Write appends a failed event
func (dlw *DeadLetterWriter) Write(event Event, attempts int, lastError error) error {
	dlw.mu.Lock()
	defer dlw.mu.Unlock()

	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now().UTC(),
		Event:         event,
		Attempts:      attempts,
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}

	logger.FromContext(context.Background()).Warn(LogMsgEventDeadLettered,
		"event_type", event.Type,
		"attempts", attempts,
		"error", entry.LastError)

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	_, err = dlw.file.Write(append(data, '\n'))
	return err
}

// Close closes the dead-letter file
func (dlw *DeadLetterWriter) Close() error {
	return dlw.file.Close()
}
