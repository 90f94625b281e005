package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oarisur/TicTacToe-PerfectPlay/internal/apperror"
	"github.com/oarisur/TicTacToe-PerfectPlay/internal/config"
	"github.com/oarisur/TicTacToe-PerfectPlay/internal/repository"
	"github.com/oarisur/TicTacToe-PerfectPlay/internal/repository/storage"
	"github.com/oarisur/TicTacToe-PerfectPlay/internal/service"
	"github.com/oarisur/TicTacToe-PerfectPlay/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	statsRepo := repository.NewStatsRepository(sqliteStorage.Connection)
	if err = statsRepo.Init(ctx); err != nil {
		return fmt.Errorf("could not init stats storage: %w", err)
	}

	gameStateRepo := repository.NewGameStateRepository(redisStorage.Connection)
	prefsRepo := repository.NewPreferencesRepository(redisStorage.Connection)

	botService := service.NewBotService()
	statsService := service.NewStatsService(statsRepo)
	presenter := service.NewSlogPresenter(logger)

	botDelay := time.Duration(conf.BotDelayMS) * time.Millisecond
	session := service.NewGameSession(logger, botService, statsService, gameStateRepo, presenter, botDelay)
	defer session.Stop()

	// offer to pick up an interrupted game
	if _, err = session.CheckSavedGame(ctx); err != nil && !errors.Is(err, apperror.ErrNoSavedGame) {
		log.Error("could not check saved game", "error", err)
	}

	log.Info("Starting HTTP server", "port", conf.HTTPPort)

	restServer := rest.New(logger, session, statsService, prefsRepo)
	if err = restServer.Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
