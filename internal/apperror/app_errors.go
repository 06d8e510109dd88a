package apperror

import "errors"

// validation failures, recovered locally by the game manager.
var (
	ErrOutOfBounds           = errors.New("position is out of bounds")
	ErrCellOccupied          = errors.New("cell is already occupied")
	ErrPlacementLimitReached = errors.New("placement limit reached")
	ErrFriendlyFireBlocked   = errors.New("destination is occupied by own monster")
	ErrPathBlocked           = errors.New("path is blocked by an opposing monster")
	ErrIllegalShape          = errors.New("moves must be horizontal, vertical, or diagonal within two cells")
	ErrNotYourTurn           = errors.New("it's not your turn")
	ErrNoCreatureAtOrigin    = errors.New("no own monster at origin")
	ErrUnknownCreatureKind   = errors.New("unknown monster kind")
)

// broken invariants, fatal for the room until it is reset.
var (
	ErrTurnOwnerNotFound = errors.New("turn owner is not a member of the room")
	ErrUnknownMatchup    = errors.New("unknown monster matchup")
	ErrRoomHalted        = errors.New("room is halted")
)

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrUnknownCommand = errors.New("unknown command type")
	ErrInvalidPayload = errors.New("invalid command payload")
)

// IsFatal reports whether err signals a broken room invariant.
func IsFatal(err error) bool {
	return errors.Is(err, ErrTurnOwnerNotFound) || errors.Is(err, ErrUnknownMatchup)
}
