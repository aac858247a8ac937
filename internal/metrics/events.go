package metrics

import (
	"context"

	"github.com/osse101/BrandishSpin_Go/internal/event"
	"github.com/osse101/BrandishSpin_Go/internal/logger"
)

// EventMetricsCollector subscribes to spin events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all spin events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.SpinTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent updates metrics for one event. Decode failures are counted, not returned.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.SpinRequested:
		var p event.SpinRequestedPayloadV1
		if p, err = event.DecodePayload[event.SpinRequestedPayloadV1](evt.Payload); err == nil {
			SpinsRequested.Inc()
			SpinsPending.Inc()
			WageredTotal.Add(float64(p.Cost))
		}

	case event.SpinFulfilled:
		var p event.SpinFulfilledPayloadV1
		if p, err = event.DecodePayload[event.SpinFulfilledPayloadV1](evt.Payload); err == nil {
			SpinsPending.Dec()
			outcome := OutcomeLoss
			if p.Won {
				outcome = OutcomeWin
			}
			SpinsFulfilled.WithLabelValues(outcome).Inc()
		}

	case event.SpinPayoutSettled:
		var p event.SpinPayoutPayloadV1
		if p, err = event.DecodePayload[event.SpinPayoutPayloadV1](evt.Payload); err == nil {
			PayoutsTotal.WithLabelValues(StatusSettled).Inc()
			PayoutAmount.Observe(float64(p.Amount))
		}

	case event.SpinPayoutFailed:
		PayoutsTotal.WithLabelValues(StatusFailed).Inc()
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Warn(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
