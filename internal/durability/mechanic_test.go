package durability

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberworks/itemforge/internal/item"
	"github.com/emberworks/itemforge/internal/mechanic"
)

func TestFactory_Parse(t *testing.T) {
	factory := NewFactory().(*Factory)

	t.Run("valid section", func(t *testing.T) {
		bound, err := factory.Parse("tool_pickaxe", json.RawMessage(`{"value": 500}`))
		require.NoError(t, err)

		mech := bound.(*Mechanic)
		assert.Equal(t, 500, mech.MaxDurability())
		assert.Equal(t, TypeName, mech.Type())
		assert.Equal(t, "tool_pickaxe", mech.ItemID())
	})

	t.Run("deterministic", func(t *testing.T) {
		section := json.RawMessage(`{"value": 42}`)
		first, err := factory.Parse("tool_axe", section)
		require.NoError(t, err)
		second, err := factory.Parse("tool_axe", section)
		require.NoError(t, err)

		assert.Equal(t, first.(*Mechanic).MaxDurability(), second.(*Mechanic).MaxDurability())
	})

	t.Run("unknown keys ignored", func(t *testing.T) {
		bound, err := factory.Parse("tool_pickaxe", json.RawMessage(`{"value": 10, "sheen": "oily"}`))
		require.NoError(t, err)
		assert.Equal(t, 10, bound.(*Mechanic).MaxDurability())
	})

	t.Run("missing value", func(t *testing.T) {
		_, err := factory.Parse("tool_pickaxe", json.RawMessage(`{}`))
		assert.ErrorIs(t, err, mechanic.ErrInvalidConfiguration)
	})

	t.Run("non-positive value", func(t *testing.T) {
		_, err := factory.Parse("tool_pickaxe", json.RawMessage(`{"value": 0}`))
		assert.ErrorIs(t, err, mechanic.ErrInvalidConfiguration)

		_, err = factory.Parse("tool_pickaxe", json.RawMessage(`{"value": -5}`))
		assert.ErrorIs(t, err, mechanic.ErrInvalidConfiguration)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := factory.Parse("tool_pickaxe", json.RawMessage(`{"value": "many"}`))
		assert.ErrorIs(t, err, mechanic.ErrInvalidConfiguration)
	})
}

func TestMechanic_CanonicalModifier(t *testing.T) {
	factory := NewFactory().(*Factory)
	bound, err := factory.Parse("tool_pickaxe", json.RawMessage(`{"value": 100}`))
	require.NoError(t, err)

	mods := bound.Modifiers()
	require.Len(t, mods, 1)
	assert.Equal(t, ModifierNameInit, mods[0].Name)

	d := item.ApplyAll(item.NewDescription("tool_pickaxe"), mods)
	v, ok := d.Tag(StateKeyRemaining)
	require.True(t, ok)
	assert.Equal(t, 100, v)
}

func TestMechanic_ExtraModifiersPrecedeCanonical(t *testing.T) {
	factory := NewFactory().(*Factory)
	extra := item.Modifier{Name: "shine", Apply: func(d item.Description) item.Description {
		return d.SetTag("shine", true)
	}}

	mech := NewMechanic(factory, "tool_pickaxe", 100, extra)

	mods := mech.Modifiers()
	require.Len(t, mods, 2)
	assert.Equal(t, "shine", mods[0].Name)
	assert.Equal(t, ModifierNameInit, mods[1].Name)
}
