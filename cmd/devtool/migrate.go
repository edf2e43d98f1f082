package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PotionGacha_Go/internal/config"
	"github.com/osse101/PotionGacha_Go/internal/database"
	"github.com/osse101/PotionGacha_Go/migrations"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, status)"
}

func (c *MigrateCommand) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, status")
	}

	pool, err := openPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch args[0] {
	case "up":
		if err := database.Migrate(ctx, pool, migrations.FS); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
		return nil
	case "status":
		statuses, err := database.MigrationStatus(ctx, pool, migrations.FS)
		if err != nil {
			return err
		}
		PrintHeader("Migration status")
		for _, s := range statuses {
			applied := "-"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Printf("  %05d  %-8s  %-19s  %s\n", s.Source.Version, s.State, applied, s.Source.Path)
		}
		return nil
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

// openPool connects with a two-connection pool
func openPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	connString := cfg.GetDBConnString()
	PrintInfo("Connecting to database: %s", redactPassword(connString))
	return database.NewPool(ctx, database.PoolConfig{
		ConnString:      connString,
		MaxConns:        2,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
}
