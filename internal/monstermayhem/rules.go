package monstermayhem

import (
	"fmt"

	"github.com/rocketscienceinc/monstermayhem-backend/internal/apperror"
	"github.com/rocketscienceinc/monstermayhem-backend/internal/entity"
)

// Battle describes a combat that happened during a move.
type Battle struct {
	Attacker     string
	Defender     string
	AttackerKind entity.Kind
	DefenderKind entity.Kind
	Outcome      Outcome
}

// Winner returns the owner whose monster survived, or "" when both were destroyed.
func (that *Battle) Winner() string {
	switch that.Outcome {
	case AttackerWins:
		return that.Attacker
	case DefenderWins:
		return that.Defender
	default:
		return ""
	}
}

// PlaceMonster - puts a new monster of playerID on pos and passes the turn.
// The game is left untouched on any error.
func PlaceMonster(game *entity.Game, playerID string, pos entity.Position, kind entity.Kind) error {
	if !game.IsTurnOf(playerID) {
		return apperror.ErrNotYourTurn
	}

	if !kind.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownCreatureKind, kind)
	}

	player := game.Player(playerID)
	if player == nil {
		return fmt.Errorf("%w: %q", apperror.ErrTurnOwnerNotFound, playerID)
	}

	if err := ValidatePlacement(&game.Board, pos, player); err != nil {
		return fmt.Errorf("invalid placement: %w", err)
	}

	next, err := NextTurn(game.Players, game.Turn)
	if err != nil {
		return err
	}

	game.Board.Set(pos, &entity.Creature{Owner: playerID, Kind: kind})
	player.PlacedCount++
	player.Score++
	lastPlaced := pos
	game.LastPlaced = &lastPlaced
	game.Turn = next

	return nil
}

// MoveMonster - moves the monster of playerID from one cell to another, fighting whatever
// opposing monster stands on the destination, and passes the turn.
// The returned battle is nil when the destination was empty. The game is left untouched on any error.
func MoveMonster(game *entity.Game, playerID string, from, to entity.Position) (*Battle, error) {
	if !game.IsTurnOf(playerID) {
		return nil, apperror.ErrNotYourTurn
	}

	if !game.Board.IsInBounds(from) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrNoCreatureAtOrigin, from)
	}

	mover := game.Board.Get(from)
	if mover == nil || mover.Owner != playerID {
		return nil, fmt.Errorf("%w: %s", apperror.ErrNoCreatureAtOrigin, from)
	}

	if err := ValidateMove(&game.Board, playerID, from, to); err != nil {
		return nil, fmt.Errorf("invalid move: %w", err)
	}

	var battle *Battle

	if defender := game.Board.Get(to); defender != nil {
		outcome, err := Resolve(mover.Kind, defender.Kind)
		if err != nil {
			return nil, err
		}

		battle = &Battle{
			Attacker:     mover.Owner,
			Defender:     defender.Owner,
			AttackerKind: mover.Kind,
			DefenderKind: defender.Kind,
			Outcome:      outcome,
		}
	}

	next, err := NextTurn(game.Players, game.Turn)
	if err != nil {
		return nil, err
	}

	switch {
	case battle == nil, battle.Outcome == AttackerWins:
		game.Board.Set(to, mover)
	case battle.Outcome == BothDestroyed:
		game.Board.Set(to, nil)
	}

	game.Board.Set(from, nil)
	game.Turn = next

	return battle, nil
}
