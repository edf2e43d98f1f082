package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/PotionGacha_Go/internal/domain"
	"github.com/osse101/PotionGacha_Go/internal/logger"
	"github.com/osse101/PotionGacha_Go/internal/metrics"
	"github.com/osse101/PotionGacha_Go/internal/repository"
)

// Grant adds quantity units of an item to a player and returns the new total.
// A zero quantity changes nothing and reports the current total.
func (s *service) Grant(ctx context.Context, playerID int64, itemID, quantity int) (*domain.GrantResult, error) {
	ctx = logger.WithPlayerID(ctx, playerID)
	log := logger.FromContext(ctx)
	log.Info(LogMsgGrantCalled, "item_id", itemID, "quantity", quantity)

	if quantity < 0 {
		return nil, rejectInput(ctx, metrics.OperationGrant, fmt.Errorf(ErrFmtNegativeQuantity, domain.ErrInvalidInput, quantity))
	}
	if !s.catalog.Exists(itemID) {
		return nil, rejectInput(ctx, metrics.OperationGrant, fmt.Errorf(ErrFmtUnknownItemID, domain.ErrUnknownItem, itemID))
	}

	result := &domain.GrantResult{ItemID: itemID}
	err := s.withTx(ctx, metrics.OperationGrant, func(tx repository.InventoryTx) error {
		if _, err := tx.GetPlayerForUpdate(ctx, playerID); err != nil {
			return err
		}

		row, err := tx.GetItemForUpdate(ctx, playerID, itemID)
		if err != nil {
			return err
		}

		if quantity == 0 {
			if row != nil {
				result.Count = row.Count
			}
			return nil
		}

		count, err := tx.UpsertAdd(ctx, playerID, itemID, quantity)
		if err != nil {
			return err
		}
		result.Count = count
		return nil
	})
	if err != nil {
		return nil, err
	}

	if quantity > 0 {
		metrics.ItemsGranted.WithLabelValues(metrics.ItemLabel(itemID)).Add(float64(quantity))
	}
	log.Info(LogMsgItemsGranted, "item_id", itemID, "quantity", quantity, "count", result.Count)
	return result, nil
}
