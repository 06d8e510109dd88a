package monstermayhem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/monstermayhem-backend/internal/apperror"
	"github.com/rocketscienceinc/monstermayhem-backend/internal/entity"
)

func TestNextTurn(t *testing.T) {
	players := []*entity.PlayerSlot{
		entity.NewPlayerSlot("a"),
		entity.NewPlayerSlot("b"),
		entity.NewPlayerSlot("c"),
	}

	t.Run("Passes to the next seat", func(t *testing.T) {
		next, err := NextTurn(players, "a")

		require.NoError(t, err)
		assert.Equal(t, "b", next)
	})

	t.Run("Wraps around after the last seat", func(t *testing.T) {
		next, err := NextTurn(players, "c")

		require.NoError(t, err)
		assert.Equal(t, "a", next)
	})

	t.Run("Single player keeps the turn", func(t *testing.T) {
		next, err := NextTurn(players[:1], "a")

		require.NoError(t, err)
		assert.Equal(t, "a", next)
	})

	t.Run("Unknown turn owner", func(t *testing.T) {
		// When: the current turn owner is not seated
		_, err := NextTurn(players, "z")

		// Then: ErrTurnOwnerNotFound is returned instead of wrapping silently
		require.ErrorIs(t, err, apperror.ErrTurnOwnerNotFound)
	})
}
