package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pokework/pokework-api/internal/api"
	"github.com/pokework/pokework-api/internal/core/service"
	"github.com/pokework/pokework-api/internal/infrastructure/bootstrap"
	"github.com/pokework/pokework-api/internal/infrastructure/config"
	mongodb "github.com/pokework/pokework-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pokework/pokework-api/internal/infrastructure/db/redis"
	"github.com/pokework/pokework-api/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "pokework-api",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close")
		}
	}()

	// --- First-boot seeding ---
	userRepo := mongodb.NewUserRepository(db)
	pokemonRepo := mongodb.NewPokemonRepository(db)
	authService := service.NewAuthService(userRepo, pokemonRepo, mongodb.NewTxRunner(client), cfg.JWTSecret, 24*time.Hour, log)
	if err := bootstrap.SeedAdmin(ctx, userRepo, authService, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword, log); err != nil {
		log.Fatal().Err(err).Msg("admin seeding failed")
	}

	// --- HTTP server ---
	e := api.NewRouter(client, db, rdb, cfg.JWTSecret, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	// Block until SIGINT/SIGTERM, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info().Msg("shutting down")
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
