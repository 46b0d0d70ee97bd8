package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/fragrewards/internal/config"
	"github.com/osse101/fragrewards/internal/database"
	"github.com/osse101/fragrewards/internal/database/postgres"
	"github.com/osse101/fragrewards/internal/domain"
	"github.com/osse101/fragrewards/internal/handler"
	"github.com/osse101/fragrewards/internal/persistence"
)

// Storage is the selected record backend. DB is set only for the postgres
// backend and must be closed by the caller.
type Storage struct {
	Backend persistence.Storage
	DB      *pgxpool.Pool
}

// Ready returns the readiness check for the backend, or nil when there is
// nothing to ping
func (s *Storage) Ready() handler.Pinger {
	if s.DB == nil {
		return nil
	}
	return s.DB
}

// InitializeStorage builds the record storage named by cfg.StorageBackend.
// Durable backends are fronted by an LRU read cache when CacheSize > 0.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	s := &Storage{}
	switch cfg.StorageBackend {
	case config.StorageMemory:
		s.Backend = persistence.NewMemoryStorage()
	case config.StorageFile:
		s.Backend = persistence.NewFileStorage(cfg.DataDir)
	case config.StoragePostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		s.DB = pool
		s.Backend = postgres.NewRecordStorage(pool)
	default:
		return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnknownBackend, cfg.StorageBackend)
	}

	if cfg.StorageBackend != config.StorageMemory && cfg.CacheSize > 0 {
		s.Backend = persistence.NewCachedStorage(s.Backend, cfg.CacheSize, cfg.CacheTTL)
	}

	slog.Info(LogMsgStorageInitialized,
		"backend", cfg.StorageBackend,
		"cache_size", cfg.CacheSize,
		"cache_ttl", cfg.CacheTTL)
	return s, nil
}
