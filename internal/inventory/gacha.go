package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/osse101/PotionGacha_Go/internal/domain"
	"github.com/osse101/PotionGacha_Go/internal/logger"
	"github.com/osse101/PotionGacha_Go/internal/metrics"
	"github.com/osse101/PotionGacha_Go/internal/repository"
)

// DrawGacha charges drawCount × unit cost and credits every item won.
// The debit and all credits commit together or not at all.
func (s *service) DrawGacha(ctx context.Context, playerID int64, drawCount int) (*domain.GachaResult, error) {
	ctx = logger.WithPlayerID(ctx, playerID)
	log := logger.FromContext(ctx)
	log.Info(LogMsgGachaCalled, "draw_count", drawCount)

	if drawCount < 1 || drawCount > s.limits.MaxGachaDraws {
		return nil, rejectInput(ctx, metrics.OperationGacha,
			fmt.Errorf(ErrFmtDrawCountRange, domain.ErrInvalidInput, drawCount, s.limits.MaxGachaDraws))
	}
	cost := drawCount * s.limits.GachaUnitCost

	var result *domain.GachaResult
	var won []int
	err := s.withTx(ctx, metrics.OperationGacha, func(tx repository.InventoryTx) error {
		player, err := tx.GetPlayerForUpdate(ctx, playerID)
		if err != nil {
			return err
		}
		if player.Currency < cost {
			return domain.ErrInsufficientFunds
		}

		won = s.drawer.Draw(drawCount)

		remaining, err := tx.SpendCurrency(ctx, playerID, cost)
		if err != nil {
			return err
		}

		totals, err := creditWinnings(ctx, tx, playerID, won)
		if err != nil {
			return err
		}

		results := make([]domain.ItemCount, len(won))
		for i, id := range won {
			results[i] = domain.ItemCount{ItemID: id, Count: 1}
		}
		result = &domain.GachaResult{
			Results: results,
			Player:  domain.GachaPlayerState{Currency: remaining, Items: totals},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	recordDraws(drawCount, won, cost)
	log.Info(LogMsgGachaSettled, "draw_count", drawCount, "won", len(won),
		"spent", cost, "currency", result.Player.Currency)
	return result, nil
}

// creditWinnings adds every won item in ascending item id order and returns
// the new total of each distinct item.
func creditWinnings(ctx context.Context, tx repository.InventoryTx, playerID int64, won []int) ([]domain.ItemCount, error) {
	tally := make(map[int]int, len(won))
	for _, id := range won {
		tally[id]++
	}

	ids := make([]int, 0, len(tally))
	for id := range tally {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	totals := make([]domain.ItemCount, 0, len(ids))
	for _, id := range ids {
		if _, err := tx.GetItemForUpdate(ctx, playerID, id); err != nil {
			return nil, err
		}
		count, err := tx.UpsertAdd(ctx, playerID, id, tally[id])
		if err != nil {
			return nil, err
		}
		totals = append(totals, domain.ItemCount{ItemID: id, Count: count})
	}
	return totals, nil
}

func recordDraws(drawCount int, won []int, cost int) {
	for _, id := range won {
		metrics.GachaDraws.WithLabelValues(metrics.ItemLabel(id)).Inc()
	}
	if misses := drawCount - len(won); misses > 0 {
		metrics.GachaDraws.WithLabelValues(metrics.GachaMissLabel).Add(float64(misses))
	}
	metrics.CurrencySpent.Add(float64(cost))
}
