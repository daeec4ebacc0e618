// Package durability implements the durability mechanic: items carry a
// configurable true durability counter, decoupled from the host's fixed
// native wear range, and project it onto that range so existing host UI works
// unmodified.
package durability

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/emberworks/itemforge/internal/item"
	"github.com/emberworks/itemforge/internal/mechanic"
	"github.com/emberworks/itemforge/internal/pack"
)

var validate = validator.New()

// Config is the configuration section for the durability mechanic, e.g.
//
//	"durability": {"value": 500}
//
// Unknown keys are ignored. Value must be a positive integer.
type Config struct {
	Value int `json:"value" validate:"required,gt=0"`
}

// Factory parses durability sections and tracks which item identifiers carry
// the mechanic.
type Factory struct {
	*mechanic.Bindings
	packChannel *pack.Channel
}

// NewFactory constructs the durability factory. It has the mechanic.Constructor
// shape expected by Registry.Register.
func NewFactory() mechanic.Factory {
	return &Factory{
		Bindings: mechanic.NewBindings(TypeName),
	}
}

// AttachPack connects the resource-pack side channel. The mechanic schedules
// its wear-overlay transform there; asset generation itself happens elsewhere.
func (f *Factory) AttachPack(channel *pack.Channel) {
	f.packChannel = channel
	channel.AddModifiers(pack.Transform{
		Name: ModifierNameWearOverlay,
		Apply: func(a pack.Asset) pack.Asset {
			return a
		},
	})
}

// Parse derives a durability mechanic from an item's configuration section.
func (f *Factory) Parse(itemID string, section json.RawMessage) (mechanic.Mechanic, error) {
	var cfg Config
	if err := json.Unmarshal(section, &cfg); err != nil {
		return nil, fmt.Errorf("%w: item %q durability section: %v", mechanic.ErrInvalidConfiguration, itemID, err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: item %q durability value must be a positive integer", mechanic.ErrInvalidConfiguration, itemID)
	}
	return NewMechanic(f, itemID, cfg.Value), nil
}

// Mechanic is the durability behavior configured for one item identifier.
// Immutable after construction.
type Mechanic struct {
	mechanic.Base
	maxDurability int
}

// NewMechanic builds a durability mechanic. Extra modifiers supplied by the
// caller come first; the canonical modifier that seeds the persisted counter
// at build time is appended after them.
func NewMechanic(factory mechanic.Factory, itemID string, maxDurability int, extra ...item.Modifier) *Mechanic {
	canonical := item.Modifier{
		Name: ModifierNameInit,
		Apply: func(d item.Description) item.Description {
			return d.SetTag(StateKeyRemaining, maxDurability)
		},
	}

	modifiers := make([]item.Modifier, 0, len(extra)+1)
	modifiers = append(modifiers, extra...)
	modifiers = append(modifiers, canonical)

	return &Mechanic{
		Base:          mechanic.NewBase(factory, itemID, modifiers...),
		maxDurability: maxDurability,
	}
}

// MaxDurability returns the configured true durability range.
func (m *Mechanic) MaxDurability() int {
	return m.maxDurability
}
