package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/monstermayhem-backend/internal/config"
	"github.com/rocketscienceinc/monstermayhem-backend/internal/repository"
	"github.com/rocketscienceinc/monstermayhem-backend/internal/repository/storage"
	"github.com/rocketscienceinc/monstermayhem-backend/internal/usecase"
	"github.com/rocketscienceinc/monstermayhem-backend/transport/rest"
	"github.com/rocketscienceinc/monstermayhem-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	statsRepo, closeStats, err := newStatsRepository(ctx, log, conf)
	if err != nil {
		return err
	}

	defer closeStats()

	gameManager := usecase.NewGameManager(logger, repository.NewRoomRepository(), statsRepo)

	group, ctx := errgroup.WithContext(ctx)

	// run HTTP server
	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)

		if err := rest.New(logger, rest.NewGameHandler(logger)).Start(ctx, conf.HTTPPort); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}

		return nil
	})

	// run Websocket server
	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)

		if err := websocket.New(logger, gameManager).Start(ctx, conf.SocketPort); err != nil {
			return fmt.Errorf("WebSocket server error: %w", err)
		}

		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Application context canceled, shut down")

	return nil
}

func newStatsRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.StatsRepository, func(), error) {
	if conf.StatsBackend != config.StatsBackendRedis {
		log.Info("Using in-memory stats")
		return repository.NewMemoryStatsRepository(), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	log.Info("Using redis stats", "addr", redisAddrString)

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewStatsRepository(redisStorage), closeStorage, nil
}
