package entity

const MaxPlacements = 10

// PlayerSlot is a player's seat in a room.
type PlayerSlot struct {
	ID          string `json:"playerId"`
	PlacedCount int    `json:"placedCount"`
	Score       int    `json:"score"`
}

func NewPlayerSlot(id string) *PlayerSlot {
	return &PlayerSlot{ID: id}
}

func (that *PlayerSlot) CanPlace() bool {
	return that.PlacedCount < MaxPlacements
}
