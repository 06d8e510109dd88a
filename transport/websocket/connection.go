package websocket

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/monstermayhem-backend/internal/entity"
)

const writeWait = 10 * time.Second

type seat struct {
	roomID   string
	playerID string
}

// connection is the delivery handle of one socket. Writes may come from any room goroutine.
type connection struct {
	id string
	ws *websocket.Conn

	writeMu sync.Mutex

	seatsMu sync.Mutex
	seats   map[seat]struct{}
}

func newConnection(ws *websocket.Conn) *connection {
	return &connection{
		id:    uuid.NewString(),
		ws:    ws,
		seats: make(map[seat]struct{}),
	}
}

func (that *connection) ID() string {
	return that.id
}

func (that *connection) Send(ctx context.Context, message *entity.Message) error {
	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	deadline := time.Now().Add(writeWait)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := that.ws.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := that.ws.WriteJSON(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *connection) remember(roomID, playerID string) {
	that.seatsMu.Lock()
	defer that.seatsMu.Unlock()

	that.seats[seat{roomID: roomID, playerID: playerID}] = struct{}{}
}

// joined returns every seat this connection has taken.
func (that *connection) joined() []seat {
	that.seatsMu.Lock()
	defer that.seatsMu.Unlock()

	seats := make([]seat, 0, len(that.seats))
	for s := range that.seats {
		seats = append(seats, s)
	}

	return seats
}
