package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/osse101/PotionGacha_Go/internal/catalog"
	"github.com/osse101/PotionGacha_Go/internal/config"
	"github.com/osse101/PotionGacha_Go/internal/database"
	"github.com/osse101/PotionGacha_Go/internal/database/postgres"
	"github.com/osse101/PotionGacha_Go/internal/domain"
	"github.com/osse101/PotionGacha_Go/internal/gacha"
	"github.com/osse101/PotionGacha_Go/internal/inventory"
	"github.com/osse101/PotionGacha_Go/migrations"
)

const (
	defaultSeedPlayers  = 3
	seedStartingHP      = 50
	seedStartingMP      = 50
	seedStartingMoney   = 1000
	seedStartingPotions = 5
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Create demo players holding every catalog item ([count])"
}

func (c *SeedCommand) Run(ctx context.Context, cfg *config.Config, args []string) error {
	players := defaultSeedPlayers
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("player count must be a positive integer, got %q", args[0])
		}
		players = n
	}

	items, err := catalog.LoadOrDefault(cfg.CatalogPath)
	if err != nil {
		return err
	}

	pool, err := openPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, migrations.FS); err != nil {
		return err
	}

	repo := postgres.NewInventoryRepository(pool, cfg.DBLockTimeout)
	svc := inventory.NewService(repo, items, gacha.NewEngine(items.Weighted()), cfg.Limits())

	PrintInfo("Seeding %d players...", players)
	for i := 0; i < players; i++ {
		player, err := repo.CreatePlayer(ctx, domain.Player{
			HP:       seedStartingHP,
			MP:       seedStartingMP,
			Currency: seedStartingMoney,
		})
		if err != nil {
			return fmt.Errorf("failed to create player: %w", err)
		}

		for _, def := range items.Items() {
			if _, err := svc.Grant(ctx, player.ID, def.ID, seedStartingPotions); err != nil {
				return fmt.Errorf("failed to grant item %d to player %d: %w", def.ID, player.ID, err)
			}
		}
		PrintSuccess("Player %d created", player.ID)
	}

	PrintSuccess("Seed completed")
	return nil
}
