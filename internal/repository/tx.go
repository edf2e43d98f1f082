package repository

import (
	"context"
)

// Tx is a unit of work that ends with exactly one Commit or Rollback.
// Calling either again returns domain.ErrTxClosed.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
