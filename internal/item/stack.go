package item

// Stack is a finalized item instance owned by the host: an item identifier, a
// quantity, the host's native wear field, and the persisted state embedded at
// build time.
//
// Wear runs from 0 (pristine) to WearMax (fixed by the underlying item type).
// Reactors that keep an internal counter decoupled from the native range must
// write the counter and the wear projection through ApplyWear so no observer
// sees one without the other.
type Stack struct {
	itemID      string
	displayName string
	quantity    int
	wear        int
	wearMax     int
	state       State
}

// ItemID returns the identifier of the item definition this stack was built from.
func (s *Stack) ItemID() string {
	return s.itemID
}

// DisplayName returns the display name the stack was finalized with.
func (s *Stack) DisplayName() string {
	return s.displayName
}

// Quantity returns the stack quantity.
func (s *Stack) Quantity() int {
	return s.quantity
}

// SetQuantity sets the stack quantity.
func (s *Stack) SetQuantity(quantity int) {
	s.quantity = quantity
}

// Wear returns the current native wear value.
func (s *Stack) Wear() int {
	return s.wear
}

// WearMax returns the native wear range fixed by the item type.
func (s *Stack) WearMax() int {
	return s.wearMax
}

// State returns the persisted state embedded in the stack.
func (s *Stack) State() *State {
	return &s.state
}

// ApplyWear writes a persisted integer counter and the native wear projection
// in one step, keeping the hidden state and the displayed value consistent.
func (s *Stack) ApplyWear(key Tag, remaining, wear int) {
	s.state.SetInt(key, remaining)
	s.wear = wear
}

// Deplete removes the stack from existence by zeroing its quantity.
func (s *Stack) Deplete() {
	s.quantity = 0
}

// Depleted reports whether the stack has been removed from existence.
func (s *Stack) Depleted() bool {
	return s.quantity <= 0
}
