package repository

import (
	"context"
	"errors"

	"github.com/osse101/PotionGacha_Go/internal/domain"
	"github.com/osse101/PotionGacha_Go/internal/logger"
)

// SafeRollback is meant to be deferred right after BeginTx. After a
// successful Commit the rollback reports domain.ErrTxClosed, which is ignored.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, domain.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
