// Package pack is the side channel mechanics use to schedule transforms
// against packaged visual assets. Asset generation itself lives outside this
// core; the channel only collects the transforms in order.
package pack

// Asset is a packaged visual asset handed to transforms by the pack builder.
type Asset struct {
	Path string
	Data []byte
}

// Transform is a named pure transform over a packaged asset, the visual
// counterpart of an item description modifier.
type Transform struct {
	Name  string
	Apply func(Asset) Asset
}

// Channel collects asset transforms contributed by mechanics during
// initialization. Like mechanic bindings, writes are confined to the
// single-threaded startup phase.
type Channel struct {
	transforms []Transform
}

// NewChannel creates an empty channel.
func NewChannel() *Channel {
	return &Channel{}
}

// AddModifiers schedules transforms, preserving the order given.
func (c *Channel) AddModifiers(transforms ...Transform) {
	c.transforms = append(c.transforms, transforms...)
}

// Transforms returns a copy of the scheduled transforms in order.
func (c *Channel) Transforms() []Transform {
	out := make([]Transform, len(c.transforms))
	copy(out, c.transforms)
	return out
}
