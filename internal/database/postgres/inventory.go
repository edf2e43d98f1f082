package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/PotionGacha_Go/internal/domain"
)

// GetItemForUpdate reads and locks a player item row; nil means the row is absent
func (t *InventoryTx) GetItemForUpdate(ctx context.Context, playerID int64, itemID int) (*domain.PlayerItem, error) {
	item := domain.PlayerItem{PlayerID: playerID, ItemID: itemID}
	err := t.tx.QueryRow(ctx, `
		SELECT count FROM player_items
		WHERE player_id = $1 AND item_id = $2
		FOR UPDATE`, playerID, itemID).Scan(&item.Count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapPgError(err, ErrMsgFailedToLockItem)
	}
	return &item, nil
}

// UpsertAdd creates the row or increments it server-side and returns the new count
func (t *InventoryTx) UpsertAdd(ctx context.Context, playerID int64, itemID, delta int) (int, error) {
	if delta < 0 {
		return 0, fmt.Errorf("%w: negative delta %d", domain.ErrInvalidInput, delta)
	}

	var count int
	err := t.tx.QueryRow(ctx, `
		INSERT INTO player_items (player_id, item_id, count)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_id, item_id)
		DO UPDATE SET count = player_items.count + EXCLUDED.count, updated_at = NOW()
		RETURNING count`, playerID, itemID, delta).Scan(&count)
	if err != nil {
		return 0, wrapPgError(err, ErrMsgFailedToUpsertItem)
	}
	return count, nil
}

// Decrement lowers the count by amount and returns the new count
func (t *InventoryTx) Decrement(ctx context.Context, playerID int64, itemID, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: negative amount %d", domain.ErrInvalidInput, amount)
	}

	var count int
	err := t.tx.QueryRow(ctx, `
		UPDATE player_items
		SET count = count - $3, updated_at = NOW()
		WHERE player_id = $1 AND item_id = $2 AND count >= $3
		RETURNING count`, playerID, itemID, amount).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrInsufficientQuantity
		}
		return 0, wrapPgError(err, ErrMsgFailedToDecrementItem)
	}
	return count, nil
}
