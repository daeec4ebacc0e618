package mechanic

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberworks/itemforge/internal/item"
)

// stubFactory is a minimal factory for registry tests.
type stubFactory struct {
	*Bindings
}

func newStubFactory(typ string) *stubFactory {
	return &stubFactory{Bindings: NewBindings(typ)}
}

func (f *stubFactory) Parse(itemID string, section json.RawMessage) (Mechanic, error) {
	m := &stubMechanic{}
	m.Base = NewBase(f, itemID)
	return m, nil
}

type stubMechanic struct {
	Base
}

func TestRegistry_Register(t *testing.T) {
	t.Run("register and resolve", func(t *testing.T) {
		registry := NewRegistry()

		err := registry.Register("durability", func() Factory { return newStubFactory("durability") })
		require.NoError(t, err)

		factory, err := registry.Resolve("durability")
		require.NoError(t, err)
		assert.Equal(t, "durability", factory.Type())
	})

	t.Run("duplicate registration rejected", func(t *testing.T) {
		registry := NewRegistry()

		first := newStubFactory("durability")
		err := registry.Register("durability", func() Factory { return first })
		require.NoError(t, err)

		err = registry.Register("durability", func() Factory { return newStubFactory("durability") })
		assert.ErrorIs(t, err, ErrDuplicateRegistration)

		// First registration remains resolvable
		factory, err := registry.Resolve("durability")
		require.NoError(t, err)
		assert.Same(t, first, factory)
	})

	t.Run("unknown type", func(t *testing.T) {
		registry := NewRegistry()

		_, err := registry.Resolve("glow")
		assert.ErrorIs(t, err, ErrUnknownType)
	})

	t.Run("constructor invoked once", func(t *testing.T) {
		registry := NewRegistry()
		calls := 0

		err := registry.Register("durability", func() Factory {
			calls++
			return newStubFactory("durability")
		})
		require.NoError(t, err)

		_, err = registry.Resolve("durability")
		require.NoError(t, err)
		_, err = registry.Resolve("durability")
		require.NoError(t, err)

		assert.Equal(t, 1, calls)
	})
}

func TestRegistry_Types(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("glow", func() Factory { return newStubFactory("glow") }))
	require.NoError(t, registry.Register("durability", func() Factory { return newStubFactory("durability") }))

	assert.Equal(t, []string{"durability", "glow"}, registry.Types())
}

func TestBindings(t *testing.T) {
	t.Run("bind then lookup", func(t *testing.T) {
		factory := newStubFactory("durability")
		mech, err := factory.Parse("tool_pickaxe", nil)
		require.NoError(t, err)

		require.NoError(t, factory.Bind("tool_pickaxe", mech))

		assert.True(t, factory.ImplementedIn("tool_pickaxe"))
		got, err := factory.Mechanic("tool_pickaxe")
		require.NoError(t, err)
		assert.Same(t, mech, got)
	})

	t.Run("duplicate binding rejected, first stands", func(t *testing.T) {
		factory := newStubFactory("durability")
		first, err := factory.Parse("tool_pickaxe", nil)
		require.NoError(t, err)
		require.NoError(t, factory.Bind("tool_pickaxe", first))

		second, err := factory.Parse("tool_pickaxe", nil)
		require.NoError(t, err)
		err = factory.Bind("tool_pickaxe", second)
		assert.ErrorIs(t, err, ErrDuplicateBinding)

		got, err := factory.Mechanic("tool_pickaxe")
		require.NoError(t, err)
		assert.Same(t, first, got)
	})

	t.Run("not implemented is expected control flow", func(t *testing.T) {
		factory := newStubFactory("durability")

		assert.False(t, factory.ImplementedIn("banana"))
		_, err := factory.Mechanic("banana")
		assert.ErrorIs(t, err, ErrNotImplemented)
	})

	t.Run("clear drops bindings", func(t *testing.T) {
		factory := newStubFactory("durability")
		mech, _ := factory.Parse("tool_pickaxe", nil)
		require.NoError(t, factory.Bind("tool_pickaxe", mech))

		factory.Clear()

		assert.False(t, factory.ImplementedIn("tool_pickaxe"))
		assert.Empty(t, factory.Items())
	})
}

func TestBase_ModifiersFrozen(t *testing.T) {
	factory := newStubFactory("durability")
	supplied := []item.Modifier{
		{Name: "caller", Apply: func(d item.Description) item.Description { return d }},
	}

	base := NewBase(factory, "tool_pickaxe", supplied...)

	// Mutating the caller's slice after construction must not leak in.
	supplied[0].Name = "mutated"
	mods := base.Modifiers()
	require.Len(t, mods, 1)
	assert.Equal(t, "caller", mods[0].Name)

	// Mutating the returned copy must not affect the frozen sequence.
	mods[0].Name = "also-mutated"
	assert.Equal(t, "caller", base.Modifiers()[0].Name)
}
