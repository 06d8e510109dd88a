package entity

// Game is the state of a single room: the board, the seats in join order and the turn pointer.
type Game struct {
	Board      Board
	Players    []*PlayerSlot
	Turn       string
	LastPlaced *Position
}

// NewGame creates a game with the creator as the sole member holding the turn.
func NewGame(playerID string) *Game {
	return &Game{
		Players: []*PlayerSlot{NewPlayerSlot(playerID)},
		Turn:    playerID,
	}
}

func (that *Game) Player(id string) *PlayerSlot {
	for _, player := range that.Players {
		if player.ID == id {
			return player
		}
	}

	return nil
}

func (that *Game) HasPlayer(id string) bool {
	return that.Player(id) != nil
}

func (that *Game) AddPlayer(id string) *PlayerSlot {
	player := NewPlayerSlot(id)
	that.Players = append(that.Players, player)

	return player
}

func (that *Game) IsTurnOf(playerID string) bool {
	return that.Turn == playerID
}

// Reset clears the board and counters while keeping the roster; the first player gets the turn.
func (that *Game) Reset() {
	that.Board.Clear()
	that.LastPlaced = nil

	for _, player := range that.Players {
		player.PlacedCount = 0
		player.Score = 0
	}

	if len(that.Players) > 0 {
		that.Turn = that.Players[0].ID
	}
}

// PlayerView is a roster entry without any connection details.
type PlayerView struct {
	ID string `json:"playerId"`
}

// Snapshot is the broadcastable projection of a game.
type Snapshot struct {
	Players       []PlayerView   `json:"players"`
	Board         [][]*Creature  `json:"board"`
	Turn          string         `json:"turn"`
	Scores        map[string]int `json:"scores"`
	MonstersCount map[string]int `json:"monstersCount"`
	LastPlaced    *Position      `json:"lastPlaced,omitempty"`
}

func (that *Game) Snapshot() *Snapshot {
	snapshot := &Snapshot{
		Players:       make([]PlayerView, 0, len(that.Players)),
		Board:         that.Board.Rows(),
		Turn:          that.Turn,
		Scores:        make(map[string]int, len(that.Players)),
		MonstersCount: make(map[string]int, len(that.Players)),
	}

	for _, player := range that.Players {
		snapshot.Players = append(snapshot.Players, PlayerView{ID: player.ID})
		snapshot.Scores[player.ID] = player.Score
		snapshot.MonstersCount[player.ID] = that.Board.CountOwned(player.ID)
	}

	if that.LastPlaced != nil {
		lastPlaced := *that.LastPlaced
		snapshot.LastPlaced = &lastPlaced
	}

	return snapshot
}
