package rest

import (
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const maxGameID = 10000

type GameHandler interface {
	CreateGame(ctx echo.Context) error
}

type createGameRequest struct {
	PlayerName     string `json:"playerName" form:"playerName"`
	InvitationCode string `json:"invitationCode" form:"invitationCode"`
}

type createGameResponse struct {
	GameID     string `json:"gameId"`
	PlayerName string `json:"playerName"`
}

type gameHandler struct {
	logger *slog.Logger
	newID  func() string
}

func NewGameHandler(logger *slog.Logger) GameHandler {
	return &gameHandler{
		logger: logger,
		newID:  randomGameID,
	}
}

// CreateGame - hands out the room a player should join: the invitation code when one was given,
// a fresh random id otherwise. The room itself is created by the first join.
func (that *gameHandler) CreateGame(ctx echo.Context) error {
	log := that.logger.With("method", "CreateGame")

	var req createGameRequest
	if err := ctx.Bind(&req); err != nil {
		log.Warn("failed to bind request", "error", err)
		return ctx.String(http.StatusBadRequest, "Invalid request")
	}

	if req.PlayerName == "" {
		return ctx.String(http.StatusBadRequest, "playerName is required")
	}

	gameID := req.InvitationCode
	if gameID == "" {
		gameID = that.newID()
	}

	log.Info("game issued", "gameID", gameID, "playerName", req.PlayerName)

	return ctx.JSON(http.StatusOK, createGameResponse{
		GameID:     gameID,
		PlayerName: req.PlayerName,
	})
}

func randomGameID() string {
	return strconv.Itoa(rand.IntN(maxGameID)) //nolint:gosec // room ids are not secrets
}
