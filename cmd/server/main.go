package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Yunus705/alpharush/internal/config"
	"github.com/Yunus705/alpharush/internal/handlers/rest"
	"github.com/Yunus705/alpharush/internal/handlers/ws"
	"github.com/Yunus705/alpharush/internal/letters"
	answersRepo "github.com/Yunus705/alpharush/internal/repositories/answers"
	roomRepo "github.com/Yunus705/alpharush/internal/repositories/room"
	"github.com/Yunus705/alpharush/internal/scoring"
	"github.com/Yunus705/alpharush/internal/services/game"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	// Load .env file if present; real env vars take precedence
	_ = godotenv.Load()

	cfg := config.Load()
	logger := newLogger(cfg)

	logger.Info().
		Str("env", cfg.Server.Env).
		Str("port", cfg.Server.Port).
		Msg("starting alpharush server")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	roomRepository, err := roomRepo.NewRedis(&roomRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create room repository")
	}

	answerRepository, err := answersRepo.NewRedis(&answersRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create answers repository")
	}

	hub := ws.NewHub(logger)

	gameService, err := game.New(&game.Config{
		MaxPlayers:    cfg.Game.MaxPlayers,
		TotalRounds:   cfg.Game.TotalRounds,
		GraceDuration: cfg.Game.GraceDuration,
		RoomRepo:      roomRepository,
		AnswerRepo:    answerRepository,
		Allocator:     letters.New(nil),
		Scorer:        scoring.New(&scoring.Config{MinAnswerLength: cfg.Game.MinAnswerLength}),
		Broadcaster:   hub,
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create game service")
	}
	defer gameService.Close()

	wsHandler, err := ws.NewHandler(&ws.HandlerConfig{
		Hub:     hub,
		Service: gameService,
		Logger:  logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create websocket handler")
	}

	server, err := rest.NewServer(&rest.Config{
		Addr:      cfg.GetAddr(),
		Service:   gameService,
		WSHandler: wsHandler,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create http server")
	}

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server stopped")
}

// newLogger builds the process logger from config
func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if cfg.Logging.Format == "json" {
		return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
