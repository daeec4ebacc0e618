package durability

import "github.com/emberworks/itemforge/internal/item"

// TypeName is the mechanic type name this package registers under.
const TypeName = "durability"

// StateKeyRemaining is the persisted-state tag holding the true remaining
// durability counter. It is written at build time by the canonical modifier
// and afterwards only by the reactor.
const StateKeyRemaining item.Tag = "durability:remaining"

// Modifier names
const (
	ModifierNameInit        = "durability:init"
	ModifierNameWearOverlay = "durability:wear-overlay"
)

// Log messages
const (
	LogMsgDamageApplied      = "Durability damage applied"
	LogMsgStackDepleted      = "Stack depleted, removing from existence"
	LogMsgPayloadUnexpected  = "Item damage payload has unexpected type"
	LogMsgDepletedEventError = "Failed to publish depletion event"
)
