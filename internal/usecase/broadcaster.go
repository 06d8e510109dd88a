package usecase

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/monstermayhem-backend/internal/entity"
)

// Broadcaster delivers room messages to the connections attached to a room.
// Callers hold the room lock, so messages of one room leave in commit order.
type Broadcaster struct {
	logger *slog.Logger
}

func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		logger: logger,
	}
}

// BroadcastState sends the current snapshot of the room to every participant.
func (that *Broadcaster) BroadcastState(ctx context.Context, room *entity.Room) {
	that.Broadcast(ctx, room, entity.NewStateMessage(room.Game.Snapshot()))
}

func (that *Broadcaster) Broadcast(ctx context.Context, room *entity.Room, message *entity.Message) {
	log := that.logger.With("method", "Broadcast", "roomID", room.ID, "type", message.Type)

	for _, conn := range room.Recipients() {
		if err := conn.Send(ctx, message); err != nil {
			log.Error("failed to send room update", "connID", conn.ID(), "error", err)
		}
	}
}

func (that *Broadcaster) SendTo(ctx context.Context, conn entity.Conn, message *entity.Message) {
	if err := conn.Send(ctx, message); err != nil {
		that.logger.Error("failed to send message", "method", "SendTo", "connID", conn.ID(), "type", message.Type, "error", err)
	}
}
