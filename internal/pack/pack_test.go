package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannel_AddModifiers(t *testing.T) {
	channel := NewChannel()

	channel.AddModifiers(
		Transform{Name: "first"},
		Transform{Name: "second"},
	)
	channel.AddModifiers(Transform{Name: "third"})

	transforms := channel.Transforms()
	assert.Len(t, transforms, 3)
	assert.Equal(t, "first", transforms[0].Name)
	assert.Equal(t, "second", transforms[1].Name)
	assert.Equal(t, "third", transforms[2].Name)
}

func TestChannel_TransformsIsCopy(t *testing.T) {
	channel := NewChannel()
	channel.AddModifiers(Transform{Name: "original"})

	transforms := channel.Transforms()
	transforms[0].Name = "mutated"

	assert.Equal(t, "original", channel.Transforms()[0].Name)
}
