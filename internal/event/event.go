// Package event provides the in-process event bus and the spin lifecycle
// payloads published on it.
package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Spin lifecycle event types
const (
	SpinRequested     Type = domain.EventTypeSpinRequested
	SpinFulfilled     Type = domain.EventTypeSpinFulfilled
	SpinPayoutSettled Type = domain.EventTypeSpinPayoutSettled
	SpinPayoutFailed  Type = domain.EventTypeSpinPayoutFailed
)

// SpinTypes lists every spin event type, for subscribers that want all of them
var SpinTypes = []Type{SpinRequested, SpinFulfilled, SpinPayoutSettled, SpinPayoutFailed}

// SpinRequestedPayloadV1 is published when a paid request is accepted
type SpinRequestedPayloadV1 struct {
	RequestID    string `json:"request_id"`
	Player       string `json:"player"`
	Cost         int64  `json:"cost"`
	OracleHandle string `json:"oracle_handle"`
	Timestamp    int64  `json:"timestamp"`
}

// SpinFulfilledPayloadV1 is published once per request when its outcome commits
type SpinFulfilledPayloadV1 struct {
	RequestID    string `json:"request_id"`
	Player       string `json:"player"`
	Won          bool   `json:"won"`
	PayoutAmount int64  `json:"payout_amount"`
	RandomValue  string `json:"random_value"`
	Timestamp    int64  `json:"timestamp"`
}

// SpinPayoutPayloadV1 is published when a winning payout settles or fails
type SpinPayoutPayloadV1 struct {
	RequestID string `json:"request_id"`
	Player    string `json:"player"`
	Amount    int64  `json:"amount"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// NewSpinRequestedEvent creates a spin.requested event
func NewSpinRequestedEvent(req *domain.SpinRequest) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinRequested,
		Payload: SpinRequestedPayloadV1{
			RequestID:    req.ID.String(),
			Player:       req.Player,
			Cost:         req.Cost,
			OracleHandle: req.OracleHandle,
			Timestamp:    time.Now().Unix(),
		},
	}
}

// NewSpinFulfilledEvent creates a spin.fulfilled event from a fulfilled request
func NewSpinFulfilledEvent(req *domain.SpinRequest) Event {
	p := SpinFulfilledPayloadV1{
		RequestID:   req.ID.String(),
		Player:      req.Player,
		RandomValue: req.RandomValue,
		Timestamp:   time.Now().Unix(),
	}
	if req.Result != nil {
		p.Won = req.Result.Won
		p.PayoutAmount = req.Result.PayoutAmount
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinFulfilled,
		Payload: p,
	}
}

// NewSpinPayoutEvent creates spin.payout_settled when cause is nil, spin.payout_failed otherwise
func NewSpinPayoutEvent(req *domain.SpinRequest, amount int64, cause error) Event {
	p := SpinPayoutPayloadV1{
		RequestID: req.ID.String(),
		Player:    req.Player,
		Amount:    amount,
		Timestamp: time.Now().Unix(),
	}
	t := SpinPayoutSettled
	if cause != nil {
		t = SpinPayoutFailed
		p.Error = cause.Error()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: p,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Publisher is the publish-only side used by services
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
