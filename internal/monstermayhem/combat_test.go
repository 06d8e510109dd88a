package monstermayhem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/monstermayhem-backend/internal/apperror"
	"github.com/rocketscienceinc/monstermayhem-backend/internal/entity"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		attacker entity.Kind
		defender entity.Kind
		want     Outcome
	}{
		{"vampire beats werewolf", entity.KindVampire, entity.KindWerewolf, AttackerWins},
		{"werewolf beats ghost", entity.KindWerewolf, entity.KindGhost, AttackerWins},
		{"ghost beats vampire", entity.KindGhost, entity.KindVampire, AttackerWins},
		{"werewolf loses to vampire", entity.KindWerewolf, entity.KindVampire, DefenderWins},
		{"ghost loses to werewolf", entity.KindGhost, entity.KindWerewolf, DefenderWins},
		{"vampire loses to ghost", entity.KindVampire, entity.KindGhost, DefenderWins},
		{"two vampires", entity.KindVampire, entity.KindVampire, BothDestroyed},
		{"two werewolves", entity.KindWerewolf, entity.KindWerewolf, BothDestroyed},
		{"two ghosts", entity.KindGhost, entity.KindGhost, BothDestroyed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: resolving the matchup
			outcome, err := Resolve(tt.attacker, tt.defender)

			// Then: the relation gives the expected outcome
			require.NoError(t, err)
			assert.Equal(t, tt.want, outcome)
		})
	}
}

func TestResolve_IsTotalAndAntiSymmetric(t *testing.T) {
	for _, x := range entity.Kinds {
		for _, y := range entity.Kinds {
			// When: resolving both orderings of the pair
			forward, err := Resolve(x, y)
			require.NoError(t, err)

			backward, err := Resolve(y, x)
			require.NoError(t, err)

			// Then: the outcomes are complementary
			switch forward {
			case AttackerWins:
				assert.Equal(t, DefenderWins, backward, "%s vs %s", x, y)
			case DefenderWins:
				assert.Equal(t, AttackerWins, backward, "%s vs %s", x, y)
			case BothDestroyed:
				assert.Equal(t, BothDestroyed, backward, "%s vs %s", x, y)
			default:
				t.Fatalf("unexpected outcome %s for %s vs %s", forward, x, y)
			}
		}
	}
}

func TestResolve_UnknownKind(t *testing.T) {
	t.Run("Unknown attacker", func(t *testing.T) {
		// When: the attacker kind is not part of the relation
		_, err := Resolve("zombie", entity.KindGhost)

		// Then: ErrUnknownMatchup is returned
		require.ErrorIs(t, err, apperror.ErrUnknownMatchup)
	})

	t.Run("Unknown defender", func(t *testing.T) {
		// When: the defender kind is not part of the relation
		_, err := Resolve(entity.KindGhost, "")

		// Then: ErrUnknownMatchup is returned
		require.ErrorIs(t, err, apperror.ErrUnknownMatchup)
	})
}
