package inventory

import (
	"context"

	"github.com/osse101/PotionGacha_Go/internal/domain"
	"github.com/osse101/PotionGacha_Go/internal/logger"
	"github.com/osse101/PotionGacha_Go/internal/metrics"
	"github.com/osse101/PotionGacha_Go/internal/repository"
)

// Consume uses one unit of a consumable item and applies its effect.
// Nothing is written unless both the stat change and the decrement succeed.
func (s *service) Consume(ctx context.Context, playerID int64, itemID int) (*domain.ConsumeResult, error) {
	ctx = logger.WithPlayerID(ctx, playerID)
	log := logger.FromContext(ctx)
	log.Info(LogMsgConsumeCalled, "item_id", itemID)

	var result *domain.ConsumeResult
	err := s.withTx(ctx, metrics.OperationConsume, func(tx repository.InventoryTx) error {
		player, err := tx.GetPlayerForUpdate(ctx, playerID)
		if err != nil {
			return err
		}

		row, err := tx.GetItemForUpdate(ctx, playerID, itemID)
		if err != nil {
			return err
		}
		if row == nil || row.Count <= 0 {
			return domain.ErrNoItemsRemaining
		}

		effect, ok := s.catalog.Effect(itemID)
		if !ok {
			return domain.ErrUnknownItem
		}

		ceiling := s.limits.MaxFor(effect.Stat)
		if current, _ := player.StatValue(effect.Stat); current >= ceiling {
			return &domain.StatAlreadyMaxError{Stat: effect.Stat}
		}

		newValue, wasAtMax, err := tx.ApplyDelta(ctx, playerID, effect.Stat, effect.Value, 0, ceiling)
		if err != nil {
			return err
		}
		if wasAtMax {
			return &domain.StatAlreadyMaxError{Stat: effect.Stat}
		}

		count, err := tx.Decrement(ctx, playerID, itemID, consumeAmount)
		if err != nil {
			return err
		}

		player.SetStat(effect.Stat, newValue)
		result = &domain.ConsumeResult{
			ItemID: itemID,
			Count:  count,
			Player: domain.PlayerSummary{ID: player.ID, HP: player.HP, MP: player.MP},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ItemsConsumed.WithLabelValues(metrics.ItemLabel(itemID)).Inc()
	log.Info(LogMsgItemConsumed, "item_id", itemID, "count", result.Count,
		"hp", result.Player.HP, "mp", result.Player.MP)
	return result, nil
}
