package guard_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotConstructed = errors.New("thing must be created via NewThing constructor")

type thing struct {
	guard guard.ConstructorGuard
}

func newThing() thing {
	return thing{guard: guard.NewConstructorGuard()}
}

func (t thing) Validate() error {
	return t.guard.Validate(errNotConstructed)
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed object passes validation", func(t *testing.T) {
		require.NoError(t, newThing().Validate())
	})

	t.Run("zero value fails with the supplied error", func(t *testing.T) {
		var zero thing
		err := zero.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errNotConstructed)
	})

	t.Run("zero value falls back to the default error when none supplied", func(t *testing.T) {
		var g guard.ConstructorGuard
		err := g.Validate(nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})

	t.Run("constructed guard ignores the supplied error", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errNotConstructed))
	})
}
