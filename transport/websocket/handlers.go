package websocket

import (
	"context"

	"github.com/rocketscienceinc/monstermayhem-backend/internal/entity"
	"github.com/rocketscienceinc/monstermayhem-backend/internal/usecase"
)

func (that *Server) dispatch(ctx context.Context, conn *connection, cmd Command) {
	switch cmd := cmd.(type) {
	case JoinCommand:
		that.handleJoin(ctx, conn, cmd)
	case PlaceCommand:
		that.handlePlace(ctx, conn, cmd)
	case MoveCommand:
		that.handleMove(ctx, conn, cmd)
	case ResetCommand:
		that.handleReset(ctx, cmd)
	default:
		that.logger.Error("unhandled command", "connID", conn.ID(), "command", cmd)
	}
}

func (that *Server) handleJoin(ctx context.Context, conn *connection, cmd JoinCommand) {
	log := that.logger.With("method", "handleJoin", "connID", conn.ID())

	if err := that.gameManager.Join(ctx, cmd.RoomID, cmd.PlayerID, conn); err != nil {
		log.Warn("join rejected", "error", err)
		return
	}

	conn.remember(cmd.RoomID, cmd.PlayerID)
}

func (that *Server) handlePlace(ctx context.Context, conn *connection, cmd PlaceCommand) {
	err := that.gameManager.Place(ctx, cmd.RoomID, cmd.PlayerID, cmd.Position, cmd.Kind)
	that.reportError(ctx, conn, err)
}

func (that *Server) handleMove(ctx context.Context, conn *connection, cmd MoveCommand) {
	err := that.gameManager.Move(ctx, cmd.RoomID, cmd.PlayerID, cmd.From, cmd.To)
	that.reportError(ctx, conn, err)
}

func (that *Server) handleReset(ctx context.Context, cmd ResetCommand) {
	if err := that.gameManager.Reset(ctx, cmd.RoomID); err != nil {
		that.logger.Debug("reset dropped", "roomID", cmd.RoomID, "error", err)
	}
}

// reportError tells the acting player about rejections they are expected to see.
// Everything else has already been logged by the game manager.
func (that *Server) reportError(ctx context.Context, conn *connection, err error) {
	if err == nil || !usecase.IsClientVisible(err) {
		return
	}

	if sendErr := conn.Send(ctx, entity.NewErrorMessage(placementLimitMessage)); sendErr != nil {
		that.logger.Error("failed to send error", "connID", conn.ID(), "error", sendErr)
	}
}
