package monstermayhem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/rocketscienceinc/monstermayhem-backend/internal/apperror"
	"github.com/rocketscienceinc/monstermayhem-backend/internal/entity"
)

const (
	alice = "alice"
	bob   = "bob"
)

func pos(x, y int) entity.Position {
	return entity.Position{X: x, Y: y}
}

func monster(owner string, kind entity.Kind) *entity.Creature {
	return &entity.Creature{Owner: owner, Kind: kind}
}

func TestValidatePlacement(t *testing.T) {
	t.Run("Empty cell in bounds", func(t *testing.T) {
		// Given: an empty board and a fresh player
		board := &entity.Board{}
		player := entity.NewPlayerSlot(alice)

		// When: validating a placement on an empty cell
		err := ValidatePlacement(board, pos(3, 4), player)

		// Then: it is allowed
		require.NoError(t, err)
	})

	t.Run("Out of bounds", func(t *testing.T) {
		board := &entity.Board{}
		player := entity.NewPlayerSlot(alice)

		for _, p := range []entity.Position{pos(-1, 0), pos(0, -1), pos(10, 0), pos(0, 10)} {
			assert.ErrorIs(t, ValidatePlacement(board, p, player), apperror.ErrOutOfBounds, p.String())
		}
	})

	t.Run("Occupied cell", func(t *testing.T) {
		// Given: a board with a monster at (2,2)
		board := &entity.Board{}
		board.Set(pos(2, 2), monster(bob, entity.KindGhost))

		// When: placing on the same cell
		err := ValidatePlacement(board, pos(2, 2), entity.NewPlayerSlot(alice))

		// Then: ErrCellOccupied is returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Placement limit", func(t *testing.T) {
		// Given: a player who has already placed the maximum number of monsters
		player := &entity.PlayerSlot{ID: alice, PlacedCount: entity.MaxPlacements}

		// When: placing again
		err := ValidatePlacement(&entity.Board{}, pos(0, 0), player)

		// Then: ErrPlacementLimitReached is returned
		require.ErrorIs(t, err, apperror.ErrPlacementLimitReached)
	})
}

func TestValidateMove(t *testing.T) {
	tests := []struct {
		name    string
		to      entity.Position
		setup   func(board *entity.Board)
		wantErr error
	}{
		{name: "Horizontal long move", to: pos(9, 5)},
		{name: "Vertical long move", to: pos(5, 0)},
		{name: "Diagonal one step", to: pos(6, 6)},
		{name: "Diagonal two steps", to: pos(3, 7)},
		{name: "Diagonal three steps", to: pos(8, 8), wantErr: apperror.ErrIllegalShape},
		{name: "Knight jump", to: pos(6, 7), wantErr: apperror.ErrIllegalShape},
		{name: "Out of bounds", to: pos(10, 5), wantErr: apperror.ErrOutOfBounds},
		{name: "Negative destination", to: pos(5, -1), wantErr: apperror.ErrOutOfBounds},
		{
			name: "Own monster on destination",
			to:   pos(5, 8),
			setup: func(board *entity.Board) {
				board.Set(pos(5, 8), monster(alice, entity.KindGhost))
			},
			wantErr: apperror.ErrFriendlyFireBlocked,
		},
		{
			name: "Opposing monster on destination",
			to:   pos(5, 8),
			setup: func(board *entity.Board) {
				board.Set(pos(5, 8), monster(bob, entity.KindGhost))
			},
		},
		{
			name: "Opposing monster on the path",
			to:   pos(0, 5),
			setup: func(board *entity.Board) {
				board.Set(pos(2, 5), monster(bob, entity.KindGhost))
			},
			wantErr: apperror.ErrPathBlocked,
		},
		{
			name: "Opposing monster on the diagonal path",
			to:   pos(7, 7),
			setup: func(board *entity.Board) {
				board.Set(pos(6, 6), monster(bob, entity.KindGhost))
			},
			wantErr: apperror.ErrPathBlocked,
		},
		{
			name: "Own monster on the path",
			to:   pos(5, 9),
			setup: func(board *entity.Board) {
				board.Set(pos(5, 7), monster(alice, entity.KindWerewolf))
			},
		},
		{
			name: "Opposing monster beside the path",
			to:   pos(5, 9),
			setup: func(board *entity.Board) {
				board.Set(pos(4, 7), monster(bob, entity.KindWerewolf))
			},
		},
		{
			name:    "Stay in place",
			to:      pos(5, 5),
			wantErr: apperror.ErrFriendlyFireBlocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: alice's vampire at (5,5)
			board := &entity.Board{}
			board.Set(pos(5, 5), monster(alice, entity.KindVampire))
			if tt.setup != nil {
				tt.setup(board)
			}

			// When: validating the move
			err := ValidateMove(board, alice, pos(5, 5), tt.to)

			// Then: the expected verdict is returned
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateMove_PathBlockedAtAnyDistance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		y := rapid.IntRange(0, entity.BoardSize-1).Draw(t, "y")
		toX := rapid.IntRange(2, entity.BoardSize-1).Draw(t, "toX")
		blockerX := rapid.IntRange(1, toX-1).Draw(t, "blockerX")

		board := &entity.Board{}
		board.Set(pos(0, y), monster(alice, entity.KindVampire))
		board.Set(pos(blockerX, y), monster(bob, entity.KindGhost))

		err := ValidateMove(board, alice, pos(0, y), pos(toX, y))
		if !errors.Is(err, apperror.ErrPathBlocked) {
			t.Fatalf("move (0,%d)->(%d,%d) past blocker at x=%d: got %v", y, toX, y, blockerX, err)
		}
	})
}

func TestValidateMove_OwnMonstersNeverBlock(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.IntRange(0, entity.BoardSize-1).Draw(t, "x")
		toY := rapid.IntRange(2, entity.BoardSize-1).Draw(t, "toY")
		ownY := rapid.IntRange(1, toY-1).Draw(t, "ownY")

		board := &entity.Board{}
		board.Set(pos(x, 0), monster(alice, entity.KindVampire))
		board.Set(pos(x, ownY), monster(alice, entity.KindGhost))

		if err := ValidateMove(board, alice, pos(x, 0), pos(x, toY)); err != nil {
			t.Fatalf("move (%d,0)->(%d,%d) over own monster rejected: %v", x, x, toY, err)
		}
	})
}
