package item

// Tag identifies a typed value stored on an item description or carried in
// the persisted state of a finalized stack.
type Tag string

// Description is the build-time accumulator for an item. It exists only
// during the build pipeline: modifiers fold over it and the result is
// finalized into a Stack.
//
// Description has value semantics. SetTag and SetDisplayName return an
// updated copy and never mutate the receiver, so a Description held by a
// cache stays stable no matter what downstream modifiers do.
type Description struct {
	itemID      string
	displayName string
	tags        map[Tag]any
}

// NewDescription starts a description for the given item identifier.
func NewDescription(itemID string) Description {
	return Description{itemID: itemID}
}

// ItemID returns the item identifier this description is being built for.
func (d Description) ItemID() string {
	return d.itemID
}

// DisplayName returns the display name accumulated so far.
func (d Description) DisplayName() string {
	return d.displayName
}

// SetDisplayName returns a copy of the description with the display name set.
func (d Description) SetDisplayName(name string) Description {
	d.displayName = name
	return d
}

// SetTag returns a copy of the description with the tag set. The tag map is
// copied on write; earlier copies of the description are unaffected.
func (d Description) SetTag(key Tag, value any) Description {
	tags := make(map[Tag]any, len(d.tags)+1)
	for k, v := range d.tags {
		tags[k] = v
	}
	tags[key] = value
	d.tags = tags
	return d
}

// Tag returns the value stored under key, if present.
func (d Description) Tag(key Tag) (any, bool) {
	v, ok := d.tags[key]
	return v, ok
}

// Finalize consumes the description and produces a live stack. Tags
// accumulated during the build become the stack's persisted state. wearMax is
// the native wear range fixed by the underlying item type.
func (d Description) Finalize(wearMax, quantity int) *Stack {
	state := newState()
	for k, v := range d.tags {
		state.values[k] = v
	}
	return &Stack{
		itemID:      d.itemID,
		displayName: d.displayName,
		quantity:    quantity,
		wearMax:     wearMax,
		state:       state,
	}
}
