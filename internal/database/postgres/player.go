package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/PotionGacha_Go/internal/domain"
)

// statColumns whitelists the columns ApplyDelta may touch
var statColumns = map[domain.Stat]string{
	domain.StatHP: "hp",
	domain.StatMP: "mp",
}

// GetPlayerForUpdate reads and locks a player row
func (t *InventoryTx) GetPlayerForUpdate(ctx context.Context, playerID int64) (*domain.Player, error) {
	return getPlayer(ctx, t.tx, playerID, true)
}

// ApplyDelta adds delta to a stat column, clamped to [floor, ceiling], in one statement
func (t *InventoryTx) ApplyDelta(ctx context.Context, playerID int64, stat domain.Stat, delta, floor, ceiling int) (int, bool, error) {
	column, ok := statColumns[stat]
	if !ok {
		return 0, false, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnknownStat, stat)
	}

	query := fmt.Sprintf(`
		WITH prev AS (
			SELECT %[1]s AS value FROM players WHERE player_id = $1
		)
		UPDATE players
		SET %[1]s = LEAST($3::int, GREATEST($2::int, players.%[1]s + $4::int)),
		    updated_at = NOW()
		FROM prev
		WHERE players.player_id = $1
		RETURNING players.%[1]s, prev.value >= $3::int`, column)

	var newValue int
	var wasAtMax bool
	err := t.tx.QueryRow(ctx, query, playerID, floor, ceiling, delta).Scan(&newValue, &wasAtMax)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, domain.ErrPlayerNotFound
		}
		return 0, false, wrapPgError(err, ErrMsgFailedToApplyStatDelta)
	}
	return newValue, wasAtMax, nil
}

// SpendCurrency debits a player's currency, refusing to go below zero
func (t *InventoryTx) SpendCurrency(ctx context.Context, playerID int64, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: negative spend %d", domain.ErrInvalidInput, amount)
	}

	var remaining int
	err := t.tx.QueryRow(ctx, `
		UPDATE players
		SET currency = currency - $2, updated_at = NOW()
		WHERE player_id = $1 AND currency >= $2
		RETURNING currency`, playerID, amount).Scan(&remaining)
	if err == nil {
		return remaining, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, wrapPgError(err, ErrMsgFailedToSpendCurrency)
	}

	// No row updated: either the player is missing or too poor
	if _, err := getPlayer(ctx, t.tx, playerID, false); err != nil {
		return 0, err
	}
	return 0, domain.ErrInsufficientFunds
}
