package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/PotionGacha_Go/internal/domain"
	"github.com/osse101/PotionGacha_Go/internal/logger"
	"github.com/osse101/PotionGacha_Go/internal/metrics"
	"github.com/osse101/PotionGacha_Go/internal/repository"
)

// withTx runs fn inside one storage transaction. The transaction commits only
// when fn returns nil; otherwise it is rolled back and the error classified.
func (s *service) withTx(ctx context.Context, operation string, fn func(tx repository.InventoryTx) error) error {
	start := time.Now()

	err := s.runTx(ctx, fn)

	outcome := metrics.OutcomeSuccess
	if err != nil {
		err = classify(err)
		outcome = metrics.OutcomeFailed
		if domain.IsBusinessError(err) {
			outcome = metrics.OutcomeRejected
			logger.FromContext(ctx).Info(LogMsgOperationRejected, "operation", operation, "reason", err)
		} else {
			logger.FromContext(ctx).Error(LogMsgOperationFailed, "operation", operation, "error", err)
		}
	}
	metrics.RecordOperation(operation, outcome, time.Since(start))
	return err
}

func (s *service) runTx(ctx context.Context, fn func(tx repository.InventoryTx) error) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// classify keeps business rejections as they are and folds every other
// failure into domain.ErrTransactionFailed with the cause still attached.
func classify(err error) error {
	if domain.IsBusinessError(err) || errors.Is(err, domain.ErrTransactionFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrTransactionFailed, err)
}

// rejectInput records a rejection that happened before any transaction began
func rejectInput(ctx context.Context, operation string, err error) error {
	logger.FromContext(ctx).Info(LogMsgOperationRejected, "operation", operation, "reason", err)
	metrics.RecordOperation(operation, metrics.OutcomeRejected, 0)
	return err
}
