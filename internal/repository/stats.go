package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/monstermayhem-backend/internal/entity"
)

const (
	gamesPlayedKey    = "stats:games"
	playerStatsKey    = "stats:player:"
	playerWinsField   = "wins"
	playerLossesField = "losses"
)

type StatsRepository interface {
	IncrementGamesPlayed(ctx context.Context) error
	AddWin(ctx context.Context, playerID string) error
	AddLoss(ctx context.Context, playerID string) error
	Get(ctx context.Context, playerIDs []string) (*entity.Stats, error)
}

type dbStats struct {
	client *redis.Client
}

func NewStatsRepository(client *redis.Client) StatsRepository {
	return &dbStats{
		client: client,
	}
}

func (that *dbStats) IncrementGamesPlayed(ctx context.Context) error {
	if err := that.client.Incr(ctx, gamesPlayedKey).Err(); err != nil {
		return fmt.Errorf("failed to increment games played: %w", err)
	}

	return nil
}

func (that *dbStats) AddWin(ctx context.Context, playerID string) error {
	if err := that.client.HIncrBy(ctx, playerStatsKey+playerID, playerWinsField, 1).Err(); err != nil {
		return fmt.Errorf("failed to add win: %w", err)
	}

	return nil
}

func (that *dbStats) AddLoss(ctx context.Context, playerID string) error {
	if err := that.client.HIncrBy(ctx, playerStatsKey+playerID, playerLossesField, 1).Err(); err != nil {
		return fmt.Errorf("failed to add loss: %w", err)
	}

	return nil
}

type dbPlayerStats struct {
	Wins   int64 `redis:"wins"`
	Losses int64 `redis:"losses"`
}

func (that *dbStats) Get(ctx context.Context, playerIDs []string) (*entity.Stats, error) {
	games, err := that.client.Get(ctx, gamesPlayedKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get games played: %w", err)
	}

	cmds := make([]*redis.MapStringStringCmd, len(playerIDs))

	pipe := that.client.Pipeline()
	for i, id := range playerIDs {
		cmds[i] = pipe.HGetAll(ctx, playerStatsKey+id)
	}

	if len(playerIDs) > 0 {
		if _, err = pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to get player stats: %w", err)
		}
	}

	stats := &entity.Stats{
		TotalGamesPlayed: games,
		PlayerStats:      make(map[string]entity.PlayerStats, len(playerIDs)),
	}

	for i, id := range playerIDs {
		var row dbPlayerStats
		if err = cmds[i].Scan(&row); err != nil {
			return nil, fmt.Errorf("failed to scan player stats: %w", err)
		}

		stats.PlayerStats[id] = entity.PlayerStats{Wins: row.Wins, Losses: row.Losses}
	}

	return stats, nil
}

// memoryStats is used when no redis is configured; counters die with the process.
type memoryStats struct {
	mu      sync.Mutex
	games   int64
	players map[string]entity.PlayerStats
}

func NewMemoryStatsRepository() StatsRepository {
	return &memoryStats{
		players: make(map[string]entity.PlayerStats),
	}
}

func (that *memoryStats) IncrementGamesPlayed(context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games++

	return nil
}

func (that *memoryStats) AddWin(_ context.Context, playerID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	stats := that.players[playerID]
	stats.Wins++
	that.players[playerID] = stats

	return nil
}

func (that *memoryStats) AddLoss(_ context.Context, playerID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	stats := that.players[playerID]
	stats.Losses++
	that.players[playerID] = stats

	return nil
}

func (that *memoryStats) Get(_ context.Context, playerIDs []string) (*entity.Stats, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	stats := &entity.Stats{
		TotalGamesPlayed: that.games,
		PlayerStats:      make(map[string]entity.PlayerStats, len(playerIDs)),
	}

	for _, id := range playerIDs {
		stats.PlayerStats[id] = that.players[id]
	}

	return stats, nil
}
