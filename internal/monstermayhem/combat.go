package monstermayhem

import (
	"fmt"

	"github.com/rocketscienceinc/monstermayhem-backend/internal/apperror"
	"github.com/rocketscienceinc/monstermayhem-backend/internal/entity"
)

type Outcome int

const (
	AttackerWins Outcome = iota + 1
	DefenderWins
	BothDestroyed
)

func (that Outcome) String() string {
	switch that {
	case AttackerWins:
		return "attacker_wins"
	case DefenderWins:
		return "defender_wins"
	case BothDestroyed:
		return "both_destroyed"
	default:
		return "unknown"
	}
}

// beats maps every kind to the kind it defeats.
var beats = map[entity.Kind]entity.Kind{
	entity.KindVampire:  entity.KindWerewolf,
	entity.KindWerewolf: entity.KindGhost,
	entity.KindGhost:    entity.KindVampire,
}

// Resolve decides a battle between a moving monster and the one it lands on.
// Equal kinds destroy each other.
func Resolve(attacker, defender entity.Kind) (Outcome, error) {
	attackerPrey, attackerKnown := beats[attacker]
	defenderPrey, defenderKnown := beats[defender]

	if !attackerKnown || !defenderKnown {
		return 0, fmt.Errorf("%w: %s vs %s", apperror.ErrUnknownMatchup, attacker, defender)
	}

	switch {
	case attacker == defender:
		return BothDestroyed, nil
	case attackerPrey == defender:
		return AttackerWins, nil
	case defenderPrey == attacker:
		return DefenderWins, nil
	default:
		return 0, fmt.Errorf("%w: %s vs %s", apperror.ErrUnknownMatchup, attacker, defender)
	}
}
