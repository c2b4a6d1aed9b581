package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/config"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/repository"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/search"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-desktop/transport/tui"
)

// RunApp - runs the game until the player quits and returns the session score.
func RunApp(logger *slog.Logger, conf *config.Config) (entity.Score, error) {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var moveCache repository.MoveCache
	if conf.SearchCache.Enabled {
		redisStorage, err := storage.New(ctx, conf.SearchCache.GetRedisAddr())
		if err != nil {
			return entity.Score{}, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		moveCache = repository.NewMoveCache(redisStorage, conf.SearchCache.TTL)
		log.Info("Move cache enabled", "addr", conf.SearchCache.GetRedisAddr())
	}

	controller := usecase.NewTurnController(logger, search.NewEngine(), moveCache)

	log.Info("Starting game", "botDelay", conf.BotDelay)

	game := tui.NewGame(ctx, logger, controller, conf.BotDelay)
	if err := game.Run(); err != nil {
		return controller.Score(), fmt.Errorf("game error: %w", err)
	}

	log.Info("Game closed", "score", controller.Score())

	return controller.Score(), nil
}
