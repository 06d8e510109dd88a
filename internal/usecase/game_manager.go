package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/monstermayhem-backend/internal/apperror"
	"github.com/rocketscienceinc/monstermayhem-backend/internal/entity"
	"github.com/rocketscienceinc/monstermayhem-backend/internal/monstermayhem"
)

type roomRepo interface {
	GetOrCreate(id, creatorID string) (*entity.Room, bool)
	GetByID(id string) (*entity.Room, error)
}

type statsRepo interface {
	IncrementGamesPlayed(ctx context.Context) error
	AddWin(ctx context.Context, playerID string) error
	AddLoss(ctx context.Context, playerID string) error
	Get(ctx context.Context, playerIDs []string) (*entity.Stats, error)
}

// GameManager applies player commands to rooms. Every command runs as one transaction under
// the room lock: validate, mutate, broadcast.
type GameManager struct {
	logger      *slog.Logger
	roomRepo    roomRepo
	statsRepo   statsRepo
	broadcaster *Broadcaster
}

func NewGameManager(logger *slog.Logger, roomRepo roomRepo, statsRepo statsRepo) *GameManager {
	return &GameManager{
		logger: logger,

		roomRepo:    roomRepo,
		statsRepo:   statsRepo,
		broadcaster: NewBroadcaster(logger),
	}
}

// Join - seats playerID in roomID, creating the room on first join, and binds conn to the player.
// A player already seated in the room reconnects: the handle is replaced and the seat is kept.
func (that *GameManager) Join(ctx context.Context, roomID, playerID string, conn entity.Conn) error {
	log := that.logger.With("method", "Join", "roomID", roomID, "playerID", playerID)

	if roomID == "" || playerID == "" {
		return fmt.Errorf("%w: room and player are required", apperror.ErrInvalidPayload)
	}

	room, created := that.roomRepo.GetOrCreate(roomID, playerID)

	room.Lock()
	defer room.Unlock()

	switch {
	case created:
		log.Info("room created")
		that.incrementGamesPlayed(ctx)
	case room.Game.HasPlayer(playerID):
		log.Info("player reconnected")
	default:
		room.Game.AddPlayer(playerID)
		log.Info("player joined", "players", len(room.Game.Players))
	}

	room.Attach(playerID, conn)

	that.broadcaster.BroadcastState(ctx, room)
	that.broadcastStats(ctx, room)

	return nil
}

// Place - puts a new monster of playerID on the board of roomID.
func (that *GameManager) Place(ctx context.Context, roomID, playerID string, pos entity.Position, kind entity.Kind) error {
	log := that.logger.With("method", "Place", "roomID", roomID, "playerID", playerID, "position", pos.String(), "kind", kind)

	room, err := that.getRoom(roomID)
	if err != nil {
		log.Debug("place dropped", "error", err)
		return err
	}

	room.Lock()
	defer room.Unlock()

	if err = room.Halted(); err != nil {
		log.Warn("place rejected, room is halted", "reason", err)
		return fmt.Errorf("%w: %w", apperror.ErrRoomHalted, err)
	}

	if err = monstermayhem.PlaceMonster(room.Game, playerID, pos, kind); err != nil {
		return that.reject(log, room, err)
	}

	log.Info("monster placed", "nextTurn", room.Game.Turn)

	that.broadcaster.BroadcastState(ctx, room)

	return nil
}

// Move - moves a monster of playerID across the board of roomID, fighting on arrival if needed.
func (that *GameManager) Move(ctx context.Context, roomID, playerID string, from, to entity.Position) error {
	log := that.logger.With("method", "Move", "roomID", roomID, "playerID", playerID, "from", from.String(), "to", to.String())

	room, err := that.getRoom(roomID)
	if err != nil {
		log.Debug("move dropped", "error", err)
		return err
	}

	room.Lock()
	defer room.Unlock()

	if err = room.Halted(); err != nil {
		log.Warn("move rejected, room is halted", "reason", err)
		return fmt.Errorf("%w: %w", apperror.ErrRoomHalted, err)
	}

	battle, err := monstermayhem.MoveMonster(room.Game, playerID, from, to)
	if err != nil {
		return that.reject(log, room, err)
	}

	log.Info("monster moved", "nextTurn", room.Game.Turn)

	that.broadcaster.BroadcastState(ctx, room)

	if battle != nil {
		log.Info("battle resolved", "defender", battle.Defender, "outcome", battle.Outcome.String())
		that.recordBattle(ctx, battle)
		that.broadcastStats(ctx, room)
	}

	return nil
}

// Reset - starts the game in roomID over with the same roster.
func (that *GameManager) Reset(ctx context.Context, roomID string) error {
	log := that.logger.With("method", "Reset", "roomID", roomID)

	room, err := that.getRoom(roomID)
	if err != nil {
		log.Debug("reset dropped", "error", err)
		return err
	}

	room.Lock()
	defer room.Unlock()

	room.Game.Reset()
	room.Resume()
	that.incrementGamesPlayed(ctx)

	log.Info("game reset", "turn", room.Game.Turn)

	that.broadcaster.BroadcastState(ctx, room)
	that.broadcastStats(ctx, room)

	return nil
}

// Disconnect - detaches connID from playerID in roomID. The seat stays so the player can rejoin.
func (that *GameManager) Disconnect(_ context.Context, roomID, playerID, connID string) {
	log := that.logger.With("method", "Disconnect", "roomID", roomID, "playerID", playerID)

	room, err := that.getRoom(roomID)
	if err != nil {
		return
	}

	room.Lock()
	defer room.Unlock()

	if room.Detach(playerID, connID) {
		log.Info("player disconnected")
	}
}

// Snapshot - returns the current view of roomID.
func (that *GameManager) Snapshot(roomID string) (*entity.Snapshot, error) {
	room, err := that.getRoom(roomID)
	if err != nil {
		return nil, err
	}

	room.Lock()
	defer room.Unlock()

	return room.Game.Snapshot(), nil
}

func (that *GameManager) getRoom(roomID string) (*entity.Room, error) {
	room, err := that.roomRepo.GetByID(roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room %q: %w", roomID, err)
	}

	return room, nil
}

// reject logs a refused command. A broken invariant halts the room until it is reset.
func (that *GameManager) reject(log *slog.Logger, room *entity.Room, err error) error {
	if apperror.IsFatal(err) {
		room.Halt(err)
		log.Error("room invariant broken, room halted", "error", err)

		return err
	}

	log.Warn("command rejected", "error", err)

	return err
}

func (that *GameManager) recordBattle(ctx context.Context, battle *monstermayhem.Battle) {
	log := that.logger.With("method", "recordBattle")

	var winners, losers []string

	switch battle.Outcome {
	case monstermayhem.AttackerWins:
		winners, losers = []string{battle.Attacker}, []string{battle.Defender}
	case monstermayhem.DefenderWins:
		winners, losers = []string{battle.Defender}, []string{battle.Attacker}
	case monstermayhem.BothDestroyed:
		losers = []string{battle.Attacker, battle.Defender}
	}

	for _, id := range winners {
		if err := that.statsRepo.AddWin(ctx, id); err != nil {
			log.Error("failed to record win", "playerID", id, "error", err)
		}
	}

	for _, id := range losers {
		if err := that.statsRepo.AddLoss(ctx, id); err != nil {
			log.Error("failed to record loss", "playerID", id, "error", err)
		}
	}
}

func (that *GameManager) incrementGamesPlayed(ctx context.Context) {
	if err := that.statsRepo.IncrementGamesPlayed(ctx); err != nil {
		that.logger.Error("failed to increment games played", "error", err)
	}
}

func (that *GameManager) broadcastStats(ctx context.Context, room *entity.Room) {
	ids := make([]string, 0, len(room.Game.Players))
	for _, player := range room.Game.Players {
		ids = append(ids, player.ID)
	}

	stats, err := that.statsRepo.Get(ctx, ids)
	if err != nil {
		that.logger.Error("failed to get stats", "roomID", room.ID, "error", err)
		return
	}

	that.broadcaster.Broadcast(ctx, room, entity.NewStatsMessage(stats))
}

// IsClientVisible reports whether a rejection should be reported back to the acting player.
func IsClientVisible(err error) bool {
	return errors.Is(err, apperror.ErrPlacementLimitReached)
}
