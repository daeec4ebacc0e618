package mechanic

import "fmt"

// Bindings is the item-identifier bookkeeping shared by factories. Concrete
// factories embed a *Bindings and add their own Parse on top, which keeps the
// capability contract closed while the set of mechanic types stays open.
//
// Writes happen only during the initialization/reload phase; event handlers
// read concurrently afterwards without locking (see package doc).
type Bindings struct {
	typ    string
	byItem map[string]Mechanic
}

// NewBindings creates the bookkeeping for a mechanic type.
func NewBindings(typ string) *Bindings {
	return &Bindings{
		typ:    typ,
		byItem: make(map[string]Mechanic),
	}
}

// Type returns the mechanic type name.
func (b *Bindings) Type() string {
	return b.typ
}

// Bind records the item-identifier binding. Rebinding an identifier without
// clearing it first is a definition conflict, surfaced as ErrDuplicateBinding;
// the existing binding stands.
func (b *Bindings) Bind(itemID string, m Mechanic) error {
	if _, exists := b.byItem[itemID]; exists {
		return fmt.Errorf("%w: item %q already implements %q", ErrDuplicateBinding, itemID, b.typ)
	}
	b.byItem[itemID] = m
	return nil
}

// ImplementedIn reports whether itemID has a mechanic of this type.
func (b *Bindings) ImplementedIn(itemID string) bool {
	_, ok := b.byItem[itemID]
	return ok
}

// Mechanic returns the mechanic bound to itemID. A miss is expected control
// flow for reactors filtering events; callers check the error rather than
// assuming a binding exists.
func (b *Bindings) Mechanic(itemID string) (Mechanic, error) {
	m, ok := b.byItem[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: item %q has no %q mechanic", ErrNotImplemented, itemID, b.typ)
	}
	return m, nil
}

// Items returns the bound item identifiers, in no particular order.
func (b *Bindings) Items() []string {
	out := make([]string, 0, len(b.byItem))
	for id := range b.byItem {
		out = append(out, id)
	}
	return out
}

// Clear drops all bindings. Used on reload, before re-applying definitions.
func (b *Bindings) Clear() {
	b.byItem = make(map[string]Mechanic)
}
