package repository

import (
	"context"

	"github.com/osse101/PotionGacha_Go/internal/domain"
)

// Inventory defines the interface for player and inventory persistence.
// Reads outside a transaction see committed state only and take no locks.
type Inventory interface {
	CreatePlayer(ctx context.Context, player domain.Player) (*domain.Player, error)
	GetPlayer(ctx context.Context, playerID int64) (*domain.Player, error)
	GetPlayerItems(ctx context.Context, playerID int64) ([]domain.PlayerItem, error)
	BeginTx(ctx context.Context) (InventoryTx, error)
}

// InventoryTx is a unit of work over player and inventory rows. Every
// ForUpdate read holds an exclusive row lock until Commit or Rollback.
type InventoryTx interface {
	Tx
	PlayerStore
	ItemStore
}

// ItemStore defines the per-player item count operations
type ItemStore interface {
	// GetItemForUpdate locks the (player, item) row and returns nil without
	// error when the row does not exist. Callers lock the owning player first.
	GetItemForUpdate(ctx context.Context, playerID int64, itemID int) (*domain.PlayerItem, error)
	// UpsertAdd creates the row with count=delta or adds delta to it and
	// returns the new count.
	UpsertAdd(ctx context.Context, playerID int64, itemID, delta int) (int, error)
	// Decrement subtracts amount and returns the new count, failing with
	// domain.ErrInsufficientQuantity instead of going negative.
	Decrement(ctx context.Context, playerID int64, itemID, amount int) (int, error)
}

// PlayerStore defines the player stat operations
type PlayerStore interface {
	GetPlayerForUpdate(ctx context.Context, playerID int64) (*domain.Player, error)
	// ApplyDelta adds delta to stat, clamps the result to [floor, ceiling] and
	// reports whether the stat was already at ceiling before the change.
	ApplyDelta(ctx context.Context, playerID int64, stat domain.Stat, delta, floor, ceiling int) (newValue int, wasAtMax bool, err error)
	// SpendCurrency debits amount and returns the remaining balance
	SpendCurrency(ctx context.Context, playerID int64, amount int) (int, error)
}
