package entity

import (
	"context"
	"sync"
)

// Conn is the delivery handle of a joined player.
type Conn interface {
	ID() string
	Send(ctx context.Context, message *Message) error
}

// Room hosts one game. All reads and writes of Game and the connection map must happen while
// holding the room lock.
type Room struct {
	ID   string
	Game *Game

	mu     sync.Mutex
	conns  map[string]Conn
	halted error
}

func NewRoom(id, creatorID string) *Room {
	return &Room{
		ID:    id,
		Game:  NewGame(creatorID),
		conns: make(map[string]Conn),
	}
}

func (that *Room) Lock() {
	that.mu.Lock()
}

func (that *Room) Unlock() {
	that.mu.Unlock()
}

// Attach binds conn to playerID, replacing any previous handle of that player.
func (that *Room) Attach(playerID string, conn Conn) {
	that.conns[playerID] = conn
}

// Detach drops the handle of playerID if it is still connID.
func (that *Room) Detach(playerID, connID string) bool {
	conn, ok := that.conns[playerID]
	if !ok || conn.ID() != connID {
		return false
	}

	delete(that.conns, playerID)

	return true
}

func (that *Room) Conn(playerID string) (Conn, bool) {
	conn, ok := that.conns[playerID]
	return conn, ok
}

// Recipients returns the live connections of the roster in join order.
func (that *Room) Recipients() []Conn {
	recipients := make([]Conn, 0, len(that.conns))
	for _, player := range that.Game.Players {
		if conn, ok := that.conns[player.ID]; ok {
			recipients = append(recipients, conn)
		}
	}

	return recipients
}

func (that *Room) Halt(reason error) {
	that.halted = reason
}

func (that *Room) Halted() error {
	return that.halted
}

func (that *Room) Resume() {
	that.halted = nil
}
