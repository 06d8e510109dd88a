package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/monstermayhem-backend/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameManager interface {
	Join(ctx context.Context, roomID, playerID string, conn entity.Conn) error
	Place(ctx context.Context, roomID, playerID string, pos entity.Position, kind entity.Kind) error
	Move(ctx context.Context, roomID, playerID string, from, to entity.Position) error
	Reset(ctx context.Context, roomID string) error
	Disconnect(ctx context.Context, roomID, playerID, connID string)
}

type Server struct {
	logger      *slog.Logger
	gameManager gameManager

	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, gameManager gameManager) *Server {
	return &Server{
		logger:      logger.With("component", "websocket"),
		gameManager: gameManager,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
	}
}

// Handler - returns the http handler serving the /ws endpoint.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(ctx),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	ws, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn := newConnection(ws)

	defer func() {
		that.disconnect(ctx, conn)

		if err = ws.Close(); err != nil {
			log.Debug("failed to close connection", "connID", conn.ID(), "error", err)
		}
	}()

	log.Info("WebSocket connection established", "connID", conn.ID())

	that.handleMessages(ctx, conn)
}

// handleMessages - processes messages from the client until the socket closes.
func (that *Server) handleMessages(ctx context.Context, conn *connection) {
	log := that.logger.With("method", "handleMessages", "connID", conn.ID())

	for {
		_, data, err := conn.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("connection closed unexpectedly", "error", err)
			} else {
				log.Debug("connection closed", "error", err)
			}

			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			continue
		}

		cmd, err := Decode(&message)
		if err != nil {
			log.Warn("message dropped", "type", message.Type, "error", err)
			continue
		}

		that.dispatch(ctx, conn, cmd)
	}
}

func (that *Server) disconnect(ctx context.Context, conn *connection) {
	for _, s := range conn.joined() {
		that.gameManager.Disconnect(ctx, s.roomID, s.playerID, conn.ID())
	}

	that.logger.Info("WebSocket connection closed", "connID", conn.ID())
}
