package event

import (
	"context"
	"fmt"

	"github.com/emberworks/itemforge/internal/item"
	"github.com/emberworks/itemforge/internal/logger"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type   `json:"type"`
	Payload any    `json:"payload"`
}

// Common event types
const (
	// ItemDamaged is dispatched when the host applies a damage delta to a live stack
	ItemDamaged Type = "item.damaged"

	// ItemDepleted is published when a reactor removes a stack from existence
	ItemDepleted Type = "item.depleted"

	// DefinitionsApplied is published after a definition load pass completes
	DefinitionsApplied Type = "definitions.applied"
)

// ItemDamagedPayload carries a native damage event: the affected item
// identifier, the damage delta, and the mutable stack whose native wear field
// the handler may override.
//
// A handler that takes over the wear computation sets SuppressDefault so the
// host does not also apply its own native wear logic on top; otherwise the
// two representations desynchronize. The payload is published by pointer so
// the flag is visible to the dispatching host.
type ItemDamagedPayload struct {
	ItemID          string
	Damage          int
	Stack           *item.Stack
	SuppressDefault bool
}

// ItemDepletedPayload is the typed payload for depletion events.
type ItemDepletedPayload struct {
	ItemID   string
	Mechanic string
}

// DefinitionsAppliedPayload is the typed payload for definition load events.
type DefinitionsAppliedPayload struct {
	MechanicsBound int
	ItemsRejected  int
}

// NewItemDamagedEvent creates an item damage event for a live stack.
func NewItemDamagedEvent(stack *item.Stack, damage int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemDamaged,
		Payload: &ItemDamagedPayload{
			ItemID: stack.ItemID(),
			Damage: damage,
			Stack:  stack,
		},
	}
}

// NewItemDepletedEvent creates a depletion event.
func NewItemDepletedEvent(itemID, mechanicType string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemDepleted,
		Payload: ItemDepletedPayload{
			ItemID:   itemID,
			Mechanic: mechanicType,
		},
	}
}

// NewDefinitionsAppliedEvent creates a definition load event.
func NewDefinitionsAppliedEvent(mechanicsBound, itemsRejected int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DefinitionsApplied,
		Payload: DefinitionsAppliedPayload{
			MechanicsBound: mechanicsBound,
			ItemsRejected:  itemsRejected,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler) *Subscription
}

// Subscription is the handle returned by Subscribe. Cancelling it detaches
// the handler; reactors cancel their subscriptions at teardown.
type Subscription struct {
	bus       *MemoryBus
	eventType Type
	id        int
}

// Cancel detaches the subscribed handler. Cancelling twice is a no-op.
func (s *Subscription) Cancel() {
	if s.bus == nil {
		return
	}
	s.bus.unsubscribe(s.eventType, s.id)
	s.bus = nil
}

type subscriber struct {
	id      int
	handler Handler
}

// MemoryBus is an in-memory implementation of the Event Bus.
//
// Dispatch is synchronous and cooperative: each event is handled to
// completion, in subscription order, before Publish returns. The host
// dispatches events one at a time, so handlers mutate stack state without
// coordination. Subscribing while a dispatch is in flight is undefined
// behavior, matching the registry discipline.
type MemoryBus struct {
	handlers map[Type][]subscriber
	nextID   int
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]subscriber),
	}
}

// Publish publishes an event to all subscribers. The context is stamped with
// a dispatch ID so handler logs correlate to one event.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	subscribers, ok := b.handlers[event.Type]
	if !ok {
		return nil
	}

	ctx = logger.WithDispatchID(ctx, logger.GenerateDispatchID())

	var errs []error
	for _, sub := range subscribers {
		if err := sub.handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type and returns the handle used
// to cancel it.
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})
	return &Subscription{bus: b, eventType: eventType, id: id}
}

func (b *MemoryBus) unsubscribe(eventType Type, id int) {
	subscribers := b.handlers[eventType]
	for i, sub := range subscribers {
		if sub.id == id {
			b.handlers[eventType] = append(subscribers[:i], subscribers[i+1:]...)
			return
		}
	}
}
