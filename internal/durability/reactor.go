package durability

import (
	"context"

	"github.com/emberworks/itemforge/internal/event"
	"github.com/emberworks/itemforge/internal/logger"
)

// Reactor subscribes to item damage events and maintains the durability
// counter of affected stacks, projecting it onto the host's native wear range.
//
// Invariant between events: 0 <= remaining <= maxDurability, and the native
// wear field equals truncate(wearMax * (1 - remaining/maxDurability)). Both
// writes go through Stack.ApplyWear so no observer sees one without the other.
type Reactor struct {
	factory *Factory
	bus     event.Bus
	subs    []*event.Subscription
}

// NewReactor creates a reactor over the durability factory's bindings.
func NewReactor(factory *Factory, bus event.Bus) *Reactor {
	return &Reactor{factory: factory, bus: bus}
}

// Register subscribes the reactor to the events it handles.
func (r *Reactor) Register() {
	r.subs = append(r.subs, r.bus.Subscribe(event.ItemDamaged, r.HandleItemDamaged))
}

// Close cancels the reactor's subscriptions at teardown.
func (r *Reactor) Close() {
	for _, sub := range r.subs {
		sub.Cancel()
	}
	r.subs = nil
}

// HandleItemDamaged applies a damage delta to the affected stack.
//
// Items without a durability mechanic are filtered out before any state is
// read, so unrelated items cost one map lookup and nothing more.
func (r *Reactor) HandleItemDamaged(ctx context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(*event.ItemDamagedPayload)
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgPayloadUnexpected, "type", evt.Type)
		return nil
	}

	if !r.factory.ImplementedIn(payload.ItemID) {
		return nil
	}

	bound, err := r.factory.Mechanic(payload.ItemID)
	if err != nil {
		// Unreachable after the filter above; surfaced for completeness.
		return err
	}
	mech := bound.(*Mechanic)

	log := logger.FromContext(ctx)
	stack := payload.Stack

	remaining, ok := stack.State().Int(StateKeyRemaining)
	if !ok {
		// Stack predates the binding; treat it as pristine.
		remaining = mech.MaxDurability()
	}

	newRemaining := remaining - payload.Damage

	if newRemaining > 0 {
		// Real-valued division before truncation, so repeated small decrements
		// do not compound rounding error. Truncation is toward zero.
		ratio := float64(newRemaining) / float64(mech.MaxDurability())
		wear := int(float64(stack.WearMax()) - ratio*float64(stack.WearMax()))
		stack.ApplyWear(StateKeyRemaining, newRemaining, wear)

		log.Debug(LogMsgDamageApplied,
			"item", payload.ItemID,
			"damage", payload.Damage,
			"remaining", newRemaining,
			"wear", wear)
	} else {
		// Depleted: remove the stack from existence rather than pinning native
		// wear at maximum; the host's own depletion behavior is not reliable
		// once the decoupled counter is the source of truth.
		stack.Deplete()

		log.Info(LogMsgStackDepleted, "item", payload.ItemID)

		if err := r.bus.Publish(ctx, event.NewItemDepletedEvent(payload.ItemID, TypeName)); err != nil {
			log.Warn(LogMsgDepletedEventError, "error", err)
		}
	}

	// The host must not apply its own native wear logic on top.
	payload.SuppressDefault = true

	return nil
}
