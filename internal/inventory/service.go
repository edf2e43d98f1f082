// Package inventory coordinates every mutation of player items and stats.
// Each operation runs as one storage transaction: row locks are taken in a
// fixed order (player, then items by ascending id), the business rule is
// checked against the locked rows, and all writes commit or none do.
package inventory

import (
	"context"

	"github.com/osse101/PotionGacha_Go/internal/catalog"
	"github.com/osse101/PotionGacha_Go/internal/domain"
	"github.com/osse101/PotionGacha_Go/internal/repository"
)

// Service defines the inventory operations
type Service interface {
	Grant(ctx context.Context, playerID int64, itemID, quantity int) (*domain.GrantResult, error)
	Consume(ctx context.Context, playerID int64, itemID int) (*domain.ConsumeResult, error)
	DrawGacha(ctx context.Context, playerID int64, drawCount int) (*domain.GachaResult, error)
}

// ItemCatalog is the read-only item metadata the service needs
type ItemCatalog interface {
	Exists(itemID int) bool
	Effect(itemID int) (catalog.Effect, bool)
}

// Drawer produces gacha outcomes; misses are omitted from the result
type Drawer interface {
	Draw(n int) []int
}

type service struct {
	repo    repository.Inventory
	catalog ItemCatalog
	drawer  Drawer
	limits  domain.Limits
}

// NewService creates a new inventory service. limits is copied and never changes afterwards.
func NewService(repo repository.Inventory, items ItemCatalog, drawer Drawer, limits domain.Limits) Service {
	return &service{
		repo:    repo,
		catalog: items,
		drawer:  drawer,
		limits:  limits,
	}
}
