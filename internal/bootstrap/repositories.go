package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/PotionGacha_Go/internal/catalog"
	"github.com/osse101/PotionGacha_Go/internal/config"
	"github.com/osse101/PotionGacha_Go/internal/database"
	"github.com/osse101/PotionGacha_Go/internal/database/memory"
	"github.com/osse101/PotionGacha_Go/internal/database/postgres"
	"github.com/osse101/PotionGacha_Go/internal/repository"
	"github.com/osse101/PotionGacha_Go/migrations"
)

// Storage holds the selected storage engine.
// Pool is what health checks ping and what shutdown closes.
type Storage struct {
	Inventory repository.Inventory
	Pool      database.Pool
}

// InitializeStorage opens the engine selected by cfg.DBDriver. For PostgreSQL
// it connects, applies pending migrations and bounds row lock waits with
// cfg.DBLockTimeout; the memory engine uses the same timeout for its row locks.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if cfg.UseMemoryStore() {
		slog.Warn(LogMsgUsingMemoryStore)
		store := memory.NewStore(cfg.DBLockTimeout)
		return &Storage{Inventory: store, Pool: store}, nil
	}

	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}

	if err := database.Migrate(ctx, pool, migrations.FS); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDatabase, err)
	}

	slog.Info(LogMsgUsingPostgresStore, "lock_timeout", cfg.DBLockTimeout)
	return &Storage{
		Inventory: postgres.NewInventoryRepository(pool, cfg.DBLockTimeout),
		Pool:      pool,
	}, nil
}

// LoadCatalog loads cfg.CatalogPath, falling back to the built-in catalog when unset
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	items, err := catalog.LoadOrDefault(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded, "path", cfg.CatalogPath, "items", len(items.Items()))
	return items, nil
}
