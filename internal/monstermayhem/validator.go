package monstermayhem

import (
	"fmt"

	"github.com/rocketscienceinc/monstermayhem-backend/internal/apperror"
	"github.com/rocketscienceinc/monstermayhem-backend/internal/entity"
)

const maxDiagonalStep = 2

// ValidatePlacement - checks that player may put a new monster on pos.
func ValidatePlacement(board *entity.Board, pos entity.Position, player *entity.PlayerSlot) error {
	if !player.CanPlace() {
		return fmt.Errorf("%w: %s placed %d", apperror.ErrPlacementLimitReached, player.ID, player.PlacedCount)
	}

	if !board.IsInBounds(pos) {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, pos)
	}

	if !board.IsEmpty(pos) {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, pos)
	}

	return nil
}

// ValidateMove - checks that turnOwner may move the monster at from onto to.
// The caller has already checked that from holds a monster of turnOwner.
func ValidateMove(board *entity.Board, turnOwner string, from, to entity.Position) error {
	if !board.IsInBounds(to) {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, to)
	}

	if target := board.Get(to); target != nil && target.Owner == turnOwner {
		return fmt.Errorf("%w: %s", apperror.ErrFriendlyFireBlocked, to)
	}

	if blocker, blocked := findBlocker(board, turnOwner, from, to); blocked {
		return fmt.Errorf("%w: %s -> %s at %s", apperror.ErrPathBlocked, from, to, blocker)
	}

	if !isLegalShape(from, to) {
		return fmt.Errorf("%w: %s -> %s", apperror.ErrIllegalShape, from, to)
	}

	return nil
}

// isLegalShape allows any horizontal or vertical distance and diagonals of up to two cells.
func isLegalShape(from, to entity.Position) bool {
	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)

	if (dx > 0 && dy == 0) || (dy > 0 && dx == 0) {
		return true
	}

	return dx == dy && dx > 0 && dx <= maxDiagonalStep
}

// findBlocker walks the cells strictly between from and to and returns the first one holding an
// opposing monster. Monsters of turnOwner never block. Only straight lines have a path.
func findBlocker(board *entity.Board, turnOwner string, from, to entity.Position) (entity.Position, bool) {
	dx, dy := to.X-from.X, to.Y-from.Y
	if dx != 0 && dy != 0 && abs(dx) != abs(dy) {
		return entity.Position{}, false
	}

	stepX, stepY := sign(dx), sign(dy)
	steps := max(abs(dx), abs(dy))

	for i := 1; i < steps; i++ {
		pos := entity.Position{X: from.X + i*stepX, Y: from.Y + i*stepY}
		if !board.IsInBounds(pos) {
			break
		}

		if creature := board.Get(pos); creature != nil && creature.Owner != turnOwner {
			return pos, true
		}
	}

	return entity.Position{}, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
