package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/cognigames/cogni-backend/internal/cache"
	"github.com/cognigames/cogni-backend/internal/catalog"
	"github.com/cognigames/cogni-backend/internal/config"
	"github.com/cognigames/cogni-backend/internal/database"
	"github.com/cognigames/cogni-backend/internal/handlers"
	"github.com/cognigames/cogni-backend/internal/jobs"
	"github.com/cognigames/cogni-backend/internal/logging"
	"github.com/cognigames/cogni-backend/internal/repository"
	"github.com/cognigames/cogni-backend/internal/routes"
	"github.com/cognigames/cogni-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.Load()

	// Structured logging (JSON to stdout)
	logging.Setup(cfg.LogLevel)

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Game catalog
	defs, err := catalog.LoadFile(cfg.GamesConfigPath)
	if err != nil {
		slog.Error("failed to load game catalog", "path", cfg.GamesConfigPath, "error", err)
		os.Exit(1)
	}

	// Database
	db, err := database.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewRefreshTokenRepository(db)
	gameRepo := repository.NewGameRepository(db)
	scoreRepo := repository.NewScoreRepository(db)
	logRepo := repository.NewSystemLogRepository(db)

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.Install(cfg.LogLevel, logRepo)

	// Services
	tokenService := services.NewTokenService(cfg)
	authService := services.NewAuthService(userRepo, tokenRepo, tokenService, cfg)
	userService := services.NewUserService(userRepo)
	gameService := services.NewGameService(gameRepo)
	scoreService := services.NewScoreService(scoreRepo, gameService, userService)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	created, err := gameService.Seed(seedCtx, defs)
	cancelSeed()
	if err != nil {
		slog.Error("game catalog seed failed", "error", err)
		os.Exit(1)
	}
	slog.Info("game catalog loaded", "games", len(defs), "created", created)

	// Housekeeping jobs
	scheduler, err := jobs.Start(logRepo, authService, cfg.LogRetentionDays)
	if err != nil {
		slog.Error("scheduler start failed", "error", err)
		os.Exit(1)
	}

	// Shared limiter storage
	var limiterStorage fiber.Storage
	if cfg.RedisURL != "" {
		redisStorage, err := cache.NewRedisStorage(cfg.RedisURL)
		if err != nil {
			slog.Error("redis unavailable, using in-memory rate limits", "error", err)
		} else {
			limiterStorage = redisStorage
			slog.Info("rate limits stored in redis")
		}
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		}
	}

	app := newApp(cfg)

	// Routes
	routes.Setup(app, cfg, userService, routes.Handlers{
		Auth:   handlers.NewAuthHandler(authService, userService),
		Health: handlers.NewHealthHandler(func() error { return database.Ping(db) }, gameService),
		User:   handlers.NewUserHandler(userService, scoreService),
		Game:   handlers.NewGameHandler(gameService, scoreService),
		Score:  handlers.NewScoreHandler(scoreService),
	}, limiterStorage)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if err := scheduler.Stop(); err != nil {
		slog.Error("scheduler shutdown error", "error", err)
	}
	if limiterStorage != nil {
		if err := limiterStorage.Close(); err != nil {
			slog.Error("redis close error", "error", err)
		}
	}
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}
