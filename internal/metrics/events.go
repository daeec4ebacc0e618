package metrics

import (
	"context"

	"github.com/emberworks/itemforge/internal/event"
	"github.com/emberworks/itemforge/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct {
	subs []*event.Subscription
}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events the collector tracks
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.ItemDamaged,
		event.ItemDepleted,
		event.DefinitionsApplied,
	}

	for _, eventType := range eventTypes {
		e.subs = append(e.subs, bus.Subscribe(eventType, e.HandleEvent))
	}
}

// Close cancels the collector's subscriptions.
func (e *EventMetricsCollector) Close() {
	for _, sub := range e.subs {
		sub.Cancel()
	}
	e.subs = nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ItemDepleted:
		payload, ok := evt.Payload.(event.ItemDepletedPayload)
		if !ok {
			log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type)
			return nil
		}
		ItemsDepleted.WithLabelValues(payload.ItemID).Inc()
	case event.DefinitionsApplied:
		payload, ok := evt.Payload.(event.DefinitionsAppliedPayload)
		if !ok {
			log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type)
			return nil
		}
		DefinitionsRejected.Add(float64(payload.ItemsRejected))
	}

	return nil
}
