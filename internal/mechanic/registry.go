package mechanic

import (
	"fmt"
	"sort"
)

// Registry is the process-wide directory mapping mechanic type names to their
// factory. It is constructed explicitly and threaded to initialization code
// rather than living as an ambient global; registration happens once per
// mechanic type during startup, resolution happens during definition loading
// and event dispatch.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register binds a unique mechanic type name to a factory constructor and
// constructs the factory. Registration is one-shot: re-registering a name
// returns ErrDuplicateRegistration and leaves the first registration intact.
func (r *Registry) Register(name string, ctor Constructor) error {
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRegistration, name)
	}
	r.factories[name] = ctor()
	return nil
}

// Resolve returns the factory registered under name, or ErrUnknownType.
func (r *Registry) Resolve(name string) (Factory, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return f, nil
}

// Types returns the registered mechanic type names in sorted order.
func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.factories))
	for name := range r.factories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
