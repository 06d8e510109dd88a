package monstermayhem

import (
	"fmt"

	"github.com/rocketscienceinc/monstermayhem-backend/internal/apperror"
	"github.com/rocketscienceinc/monstermayhem-backend/internal/entity"
)

// NextTurn returns the player seated after current, wrapping around the roster.
func NextTurn(players []*entity.PlayerSlot, current string) (string, error) {
	for i, player := range players {
		if player.ID == current {
			return players[(i+1)%len(players)].ID, nil
		}
	}

	return "", fmt.Errorf("%w: %q", apperror.ErrTurnOwnerNotFound, current)
}
