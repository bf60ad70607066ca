// Package main is the entry point for the disparo queue HTTP server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/popeskul/disparo-queue/internal/config"
	"github.com/popeskul/disparo-queue/internal/gateway"
	"github.com/popeskul/disparo-queue/internal/handler"
	"github.com/popeskul/disparo-queue/internal/infrastructure/migrate"
	"github.com/popeskul/disparo-queue/internal/middleware"
	"github.com/popeskul/disparo-queue/internal/repository"
	"github.com/popeskul/disparo-queue/internal/service"
)

const shutdownTimeout = 30 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML configuration file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		runner := migrate.NewRunner(&migrate.Config{
			DatabaseURL:    cfg.Database.GetURL(),
			MigrationsPath: cfg.Database.MigrationsPath,
		}, logger)
		if err := runner.Up(); err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// Redis only backs caches; the queue drains without it.
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Warn("Redis is unreachable, caches disabled until it recovers", zap.Error(err))
	}

	repo := repository.NewRepository(db)
	client := gateway.NewClient(&cfg.Gateway, logger)
	svc := service.NewService(cfg, repo, redisClient, client, logger)

	h := handler.NewHandler(svc, logger)

	var corsConfig *middleware.CORSConfig
	if cfg.Middleware.EnableCORS {
		corsConfig = middleware.DefaultCORSConfig()
		corsConfig.AllowedOrigins = cfg.Middleware.AllowedOrigins
	}

	chain, stopChain := middleware.Chain(&middleware.Config{
		Logger:         logger,
		CORS:           corsConfig,
		RateLimit:      rate.Limit(cfg.Middleware.RateLimit),
		RateLimitBurst: cfg.Middleware.RateLimitBurst,
		RequestTimeout: time.Duration(cfg.Middleware.RequestTimeout) * time.Second,
		TriggerToken:   cfg.Server.TriggerToken,
	})
	defer stopChain()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      chain(setupRouter(h)),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if cfg.Queue.Autostart {
		if err := svc.Scheduler.Start(); err != nil {
			logger.Error("Failed to start scheduler on startup", zap.Error(err))
		} else {
			logger.Info("Scheduler started automatically on application startup",
				zap.Duration("interval", cfg.Queue.Interval()),
				zap.Int("batchSize", cfg.Queue.BatchSize))
		}
	}

	go func() {
		logger.Info("Starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Stop returns once the row in flight is recorded.
	if svc.Scheduler.IsRunning() {
		if err := svc.Scheduler.Stop(); err != nil {
			logger.Error("Failed to stop scheduler", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
