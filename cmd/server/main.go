package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/cardnight/ledger/internal/api"
	"github.com/cardnight/ledger/internal/config"
	"github.com/cardnight/ledger/internal/factory"
	"github.com/cardnight/ledger/internal/scheduler"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("could not read .env", slog.Any("error", err))
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app, err := factory.New(ctx, factory.ConfigFrom(cfg, logger))
	if err != nil {
		logger.Error("failed to create application", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("storage ready", slog.String("storage", cfg.StorageType))

	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		Ledger:           app.Ledger,
		HubManager:       app.HubManager,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		RateLimit: api.RateLimitConfig{
			Enabled:  cfg.RateLimitEnabled,
			Requests: cfg.RateLimitRequests,
			Window:   cfg.RateLimitWindow,
		},
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	var sched *scheduler.Scheduler
	if cfg.ReconcileInterval > 0 {
		sched, err = scheduler.New(app.Ledger, cfg.ReconcileInterval, logger)
		if err != nil {
			logger.Error("failed to create scheduler", slog.Any("error", err))
			os.Exit(1)
		}
		sched.Start()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	exitCode := 0
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.Any("error", err))
			exitCode = 1
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.Any("error", err))
			exitCode = 1
		}
	}

	if sched != nil {
		if err := sched.Shutdown(); err != nil {
			logger.Error("scheduler shutdown error", slog.Any("error", err))
		}
	}
	if err := app.Close(); err != nil {
		logger.Error("failed to close storage", slog.Any("error", err))
	}

	logger.Info("server stopped")
	cancel()
	os.Exit(exitCode)
}
