// Package mechanic is the extensibility core of the platform: third parties
// define new item behaviors (mechanics), configure them per item identifier
// from declarative configuration sections, and contribute ordered build-time
// modifiers to generated items.
//
// Registration and binding are confined to the single-threaded
// initialization/reload phase; event dispatch reads the bindings afterwards.
// Concurrent registration and event dispatch is undefined behavior, so no
// internal locking is done here.
package mechanic

import (
	"encoding/json"
	"errors"

	"github.com/emberworks/itemforge/internal/item"
)

// Sentinel errors for the mechanic core
var (
	// ErrDuplicateRegistration is returned when a mechanic type name is registered twice
	ErrDuplicateRegistration = errors.New("duplicate mechanic type registration")

	// ErrUnknownType is returned when resolving a mechanic type that was never registered
	ErrUnknownType = errors.New("unknown mechanic type")

	// ErrInvalidConfiguration is returned when a mechanic configuration section
	// is missing required fields or carries out-of-range values
	ErrInvalidConfiguration = errors.New("invalid mechanic configuration")

	// ErrDuplicateBinding is returned when an item identifier is bound twice to one mechanic type
	ErrDuplicateBinding = errors.New("duplicate mechanic binding")

	// ErrNotImplemented is returned when querying a mechanic on an item identifier
	// that has none. Reactors treat this as expected control flow, not a failure.
	ErrNotImplemented = errors.New("mechanic not implemented for item")
)

// Mechanic is an immutable, configured behavior instance bound to one item
// identifier. Concrete mechanic types extend this with their own parsed fields
// and query methods; the set of types is open.
type Mechanic interface {
	// Type returns the mechanic type name this instance belongs to.
	Type() string

	// ItemID returns the item identifier this instance is bound to.
	ItemID() string

	// Modifiers returns the frozen, ordered modifier sequence contributed at
	// construction, to be folded over the item description at build time.
	Modifiers() []item.Modifier
}

// Factory parses configuration sections into mechanics of one type and tracks
// which item identifiers implement that type.
type Factory interface {
	// Type returns the mechanic type name this factory produces.
	Type() string

	// Parse derives a mechanic from the configuration section declared by an
	// item definition. Parsing is deterministic: the same section always
	// yields the same mechanic fields. Unknown keys in the section are
	// ignored; missing or out-of-range required fields return
	// ErrInvalidConfiguration.
	Parse(itemID string, section json.RawMessage) (Mechanic, error)

	// Bind records that itemID implements this mechanic type. Binding the
	// same identifier twice is a definition conflict: the second binding is
	// rejected with ErrDuplicateBinding and the first stands.
	Bind(itemID string, m Mechanic) error

	// ImplementedIn reports whether itemID has a mechanic of this type. It is
	// the O(1) filter reactors run before doing any event work.
	ImplementedIn(itemID string) bool

	// Mechanic returns the mechanic bound to itemID, or ErrNotImplemented.
	Mechanic(itemID string) (Mechanic, error)
}

// Constructor produces the factory for a mechanic type. It is invoked exactly
// once, at registration time.
type Constructor func() Factory

// Base carries the fields common to all mechanics: the non-owning
// back-reference to the owning factory, the bound item identifier, and the
// frozen modifier sequence. Concrete mechanic types embed it.
type Base struct {
	factory   Factory
	itemID    string
	modifiers []item.Modifier
}

// NewBase builds the shared mechanic fields. Caller-supplied modifiers come
// first, canonical modifiers appended by the concrete type follow; the
// sequence is copied and frozen.
func NewBase(factory Factory, itemID string, modifiers ...item.Modifier) Base {
	frozen := make([]item.Modifier, len(modifiers))
	copy(frozen, modifiers)
	return Base{
		factory:   factory,
		itemID:    itemID,
		modifiers: frozen,
	}
}

// Factory returns the owning factory.
func (b *Base) Factory() Factory {
	return b.factory
}

// Type returns the mechanic type name of the owning factory.
func (b *Base) Type() string {
	return b.factory.Type()
}

// ItemID returns the bound item identifier.
func (b *Base) ItemID() string {
	return b.itemID
}

// Modifiers returns a copy of the frozen modifier sequence.
func (b *Base) Modifiers() []item.Modifier {
	out := make([]item.Modifier, len(b.modifiers))
	copy(out, b.modifiers)
	return out
}
