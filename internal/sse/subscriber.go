package sse

import (
	"context"

	"github.com/osse101/BrandishSpin_Go/internal/event"
	"github.com/osse101/BrandishSpin_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the bridge for every spin event type
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.SpinRequested, s.handleSpinRequested)
	s.bus.Subscribe(event.SpinFulfilled, s.handleSpinFulfilled)
	s.bus.Subscribe(event.SpinPayoutSettled, s.handlePayout)
	s.bus.Subscribe(event.SpinPayoutFailed, s.handlePayout)

	logger.Info(LogMsgSubscriberReady, "types", event.SpinTypes)
}

func (s *Subscriber) handleSpinRequested(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.SpinRequestedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPayloadInvalid, "event_type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(string(evt.Type), p.Player, p)
	return nil
}

func (s *Subscriber) handleSpinFulfilled(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.SpinFulfilledPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPayloadInvalid, "event_type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(string(evt.Type), p.Player, p)
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type, "spin_id", p.RequestID, "won", p.Won)
	return nil
}

func (s *Subscriber) handlePayout(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.SpinPayoutPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPayloadInvalid, "event_type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(string(evt.Type), p.Player, p)
	return nil
}
