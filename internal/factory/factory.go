package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cardnight/ledger/internal/config"
	"github.com/cardnight/ledger/internal/dependencies/clock"
	"github.com/cardnight/ledger/internal/dependencies/random"
	"github.com/cardnight/ledger/internal/services/awards"
	"github.com/cardnight/ledger/internal/services/ledger"
	"github.com/cardnight/ledger/internal/sse"
	"github.com/cardnight/ledger/internal/storage"
	"github.com/cardnight/ledger/internal/storage/memory"
	"github.com/cardnight/ledger/internal/storage/postgres"
	redisstorage "github.com/cardnight/ledger/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory   = config.StorageMemory
	StorageTypeRedis    = config.StorageRedis
	StorageTypePostgres = config.StoragePostgres
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Roller      *awards.Roller
	Ledger      *ledger.Service
	HubManager  *sse.HubManager
	Broadcaster *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "postgres")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// PostgresConfig holds pool settings (required if StorageType is "postgres")
	PostgresConfig *postgres.Config
}

// ConfigFrom builds a factory Config from the environment settings
func ConfigFrom(cfg *config.Config, logger *slog.Logger) Config {
	fc := Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
	}
	switch cfg.StorageType {
	case StorageTypeRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisCfg.KeyPrefix = cfg.RedisKeyPrefix
		fc.RedisConfig = &redisCfg
	case StorageTypePostgres:
		pgCfg := postgres.DefaultConfig()
		pgCfg.URL = cfg.DatabaseURL
		pgCfg.MinConns = int32(cfg.DBPoolMinConns)
		pgCfg.MaxConns = int32(cfg.DBPoolMaxConns)
		fc.PostgresConfig = &pgCfg
	}
	return fc
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

func newStorage(ctx context.Context, cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	case StorageTypePostgres:
		if cfg.PostgresConfig == nil {
			return nil, errors.New("PostgresConfig required when StorageType is postgres")
		}
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return postgres.New(connectCtx, *cfg.PostgresConfig)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be memory, redis or postgres", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)
	roller := awards.NewRoller(rnd)

	return &App{
		Storage:     store,
		Clock:       clk,
		Random:      rnd,
		Roller:      roller,
		Ledger:      ledger.New(store, roller, clk, rnd, broadcaster, logger),
		HubManager:  hubManager,
		Broadcaster: broadcaster,
	}
}

// Close disconnects event streams and releases the storage backend
func (a *App) Close() error {
	a.HubManager.Close()
	if closer, ok := a.Storage.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("close storage: %w", err)
		}
	}
	return nil
}
