package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/PotionGacha_Go/internal/domain"
)

// wrapPgError translates constraint violations into domain errors and
// annotates everything else with msg.
func wrapPgError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgErrorCodeForeignKeyViolation:
			return domain.ErrPlayerNotFound
		case PgErrorCodeCheckViolation:
			return fmt.Errorf("%w: %s", domain.ErrInsufficientQuantity, pgErr.ConstraintName)
		case PgErrorCodeLockNotAvailable:
			return fmt.Errorf("%w: %s: %w", domain.ErrTransactionFailed, ErrMsgLockTimeout, err)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
