package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PotionGacha_Go/internal/domain"
	"github.com/osse101/PotionGacha_Go/internal/repository"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InventoryRepository implements repository.Inventory for PostgreSQL
type InventoryRepository struct {
	db          *pgxpool.Pool
	lockTimeout time.Duration
}

// NewInventoryRepository creates a new InventoryRepository. A positive
// lockTimeout bounds every row lock wait inside its transactions.
func NewInventoryRepository(db *pgxpool.Pool, lockTimeout time.Duration) *InventoryRepository {
	return &InventoryRepository{
		db:          db,
		lockTimeout: lockTimeout,
	}
}

// InventoryTx implements repository.InventoryTx
type InventoryTx struct {
	tx pgx.Tx
}

var _ repository.Inventory = (*InventoryRepository)(nil)
var _ repository.InventoryTx = (*InventoryTx)(nil)

// BeginTx starts a new transaction
func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}

	if r.lockTimeout > 0 {
		timeout := fmt.Sprintf("%dms", r.lockTimeout.Milliseconds())
		if _, err := tx.Exec(ctx, "SELECT set_config('lock_timeout', $1, true)", timeout); err != nil {
			_ = tx.Rollback(ctx)
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSetLockTimeout, err)
		}
	}

	return &InventoryTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *InventoryTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Rollback rolls back the transaction
func (t *InventoryTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return domain.ErrTxClosed
		}
		return err
	}
	return nil
}

// CreatePlayer inserts a player with the given starting stats
func (r *InventoryRepository) CreatePlayer(ctx context.Context, player domain.Player) (*domain.Player, error) {
	if player.HP < 0 || player.MP < 0 || player.Currency < 0 {
		return nil, fmt.Errorf("%w: negative starting stats", domain.ErrInvalidInput)
	}

	created := player
	err := r.db.QueryRow(ctx, `
		INSERT INTO players (hp, mp, currency)
		VALUES ($1, $2, $3)
		RETURNING player_id`,
		player.HP, player.MP, player.Currency,
	).Scan(&created.ID)
	if err != nil {
		return nil, wrapPgError(err, ErrMsgFailedToInsertPlayer)
	}
	return &created, nil
}

// GetPlayer returns the committed state of a player
func (r *InventoryRepository) GetPlayer(ctx context.Context, playerID int64) (*domain.Player, error) {
	return getPlayer(ctx, r.db, playerID, false)
}

// GetPlayerItems returns every item row of a player ordered by item id
func (r *InventoryRepository) GetPlayerItems(ctx context.Context, playerID int64) ([]domain.PlayerItem, error) {
	if _, err := getPlayer(ctx, r.db, playerID, false); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT player_id, item_id, count
		FROM player_items
		WHERE player_id = $1
		ORDER BY item_id`, playerID)
	if err != nil {
		return nil, wrapPgError(err, ErrMsgFailedToGetPlayerItems)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.PlayerItem])
	if err != nil {
		return nil, wrapPgError(err, ErrMsgFailedToGetPlayerItems)
	}
	return items, nil
}

// Ping checks database connectivity
func (r *InventoryRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func getPlayer(ctx context.Context, q querier, playerID int64, forUpdate bool) (*domain.Player, error) {
	query := `SELECT player_id, hp, mp, currency FROM players WHERE player_id = $1`
	msg := ErrMsgFailedToGetPlayer
	if forUpdate {
		query += ` FOR UPDATE`
		msg = ErrMsgFailedToLockPlayer
	}

	var p domain.Player
	err := q.QueryRow(ctx, query, playerID).Scan(&p.ID, &p.HP, &p.MP, &p.Currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, wrapPgError(err, msg)
	}
	return &p, nil
}
