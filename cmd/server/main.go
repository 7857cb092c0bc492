package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/P3chys/catalogo-disciplinas/internal/config"
	"github.com/P3chys/catalogo-disciplinas/internal/database"
	applogger "github.com/P3chys/catalogo-disciplinas/internal/logger"
	"github.com/P3chys/catalogo-disciplinas/internal/middleware"
	"github.com/P3chys/catalogo-disciplinas/internal/repository"
	"github.com/P3chys/catalogo-disciplinas/internal/router"
	"github.com/P3chys/catalogo-disciplinas/internal/services"
	"github.com/P3chys/catalogo-disciplinas/internal/session"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting server",
		zap.Int("port", cfg.Port),
		zap.String("gin_mode", cfg.GinMode),
	)

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get database instance", zap.Error(err))
	}

	if cfg.MigrateOnStartup {
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	if cfg.SeedOnStartup {
		if err := database.SeedSemesters(db, logger); err != nil {
			logger.Fatal("Failed to seed semesters", zap.Error(err))
		}
	}

	// The rate limiter is optional; submissions are not limited without Redis.
	rateLimiter, err := middleware.NewRateLimiter(cfg.RedisURL)
	if err != nil {
		logger.Warn("Redis unavailable, rate limiting disabled", zap.Error(err))
		rateLimiter = nil
	}

	sessions, err := session.NewManager(cfg)
	if err != nil {
		logger.Fatal("Failed to init sessions", zap.Error(err))
	}

	repo := repository.NewRepository(db)
	catalog := services.NewCatalogService(repo, logger)

	engine, err := router.Setup(router.Deps{
		Config:      cfg,
		Logger:      logger,
		Catalog:     catalog,
		Sessions:    sessions,
		DB:          sqlDB,
		RateLimiter: rateLimiter,
	})
	if err != nil {
		logger.Fatal("Failed to set up router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("Shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Failed to close database", zap.Error(err))
	}
	if err := rateLimiter.Close(); err != nil {
		logger.Error("Failed to close Redis", zap.Error(err))
	}

	logger.Info("Server stopped")
}
