package memory

import (
	"context"
	"fmt"

	"github.com/osse101/PotionGacha_Go/internal/domain"
	"github.com/osse101/PotionGacha_Go/internal/utils"
)

// Tx is a memory transaction. It must be used by one goroutine at a time.
type Tx struct {
	store *Store
	held  map[string]struct{}
	order []string

	players map[int64]domain.Player
	items   map[itemKey]int
	done    bool
}

func playerLockKey(playerID int64) string {
	return fmt.Sprintf("player:%d", playerID)
}

func itemLockKey(k itemKey) string {
	return fmt.Sprintf("item:%d:%d", k.playerID, k.itemID)
}

// lock takes the row lock for key unless this transaction already holds it
func (t *Tx) lock(ctx context.Context, key string) error {
	if t.done {
		return domain.ErrTxClosed
	}
	if _, ok := t.held[key]; ok {
		return nil
	}

	lockCtx := ctx
	if t.store.lockTimeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, t.store.lockTimeout)
		defer cancel()
	}

	if err := t.store.locks.Acquire(lockCtx, key); err != nil {
		return fmt.Errorf("%w: %s %s: %w", domain.ErrTransactionFailed, ErrMsgLockWaitAbandoned, key, err)
	}
	t.held[key] = struct{}{}
	t.order = append(t.order, key)
	return nil
}

func (t *Tx) release() {
	for i := len(t.order) - 1; i >= 0; i-- {
		t.store.locks.Release(t.order[i])
	}
	t.order = nil
	t.held = nil
	t.done = true
}

// player returns the staged view of a player, falling back to committed state
func (t *Tx) player(playerID int64) (domain.Player, bool) {
	if p, ok := t.players[playerID]; ok {
		return p, true
	}
	return t.store.committedPlayer(playerID)
}

func (t *Tx) item(k itemKey) (int, bool) {
	if count, ok := t.items[k]; ok {
		return count, true
	}
	return t.store.committedItem(k)
}

// lockedPlayer locks a player row and returns its current staged value
func (t *Tx) lockedPlayer(ctx context.Context, playerID int64) (domain.Player, error) {
	if err := t.lock(ctx, playerLockKey(playerID)); err != nil {
		return domain.Player{}, err
	}
	p, ok := t.player(playerID)
	if !ok {
		return domain.Player{}, domain.ErrPlayerNotFound
	}
	return p, nil
}

// Commit publishes every staged write at once and releases the row locks
func (t *Tx) Commit(ctx context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	if err := ctx.Err(); err != nil {
		t.release()
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}

	t.store.apply(t.players, t.items)
	t.release()
	return nil
}

// Rollback discards staged writes and releases the row locks
func (t *Tx) Rollback(ctx context.Context) error {
	if t.done {
		return domain.ErrTxClosed
	}
	t.players = nil
	t.items = nil
	t.release()
	return nil
}

// GetPlayerForUpdate reads and locks a player row
func (t *Tx) GetPlayerForUpdate(ctx context.Context, playerID int64) (*domain.Player, error) {
	p, err := t.lockedPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ApplyDelta adds delta to a stat, clamped to [floor, ceiling]
func (t *Tx) ApplyDelta(ctx context.Context, playerID int64, stat domain.Stat, delta, floor, ceiling int) (int, bool, error) {
	p, err := t.lockedPlayer(ctx, playerID)
	if err != nil {
		return 0, false, err
	}

	old, ok := p.StatValue(stat)
	if !ok {
		return 0, false, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnknownStat, stat)
	}

	newValue := utils.Clamp(old+delta, floor, ceiling)
	p.SetStat(stat, newValue)
	t.players[playerID] = p
	return newValue, old >= ceiling, nil
}

// SpendCurrency debits a player's currency, refusing to go below zero
func (t *Tx) SpendCurrency(ctx context.Context, playerID int64, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: negative spend %d", domain.ErrInvalidInput, amount)
	}

	p, err := t.lockedPlayer(ctx, playerID)
	if err != nil {
		return 0, err
	}
	if p.Currency < amount {
		return 0, domain.ErrInsufficientFunds
	}

	p.Currency -= amount
	t.players[playerID] = p
	return p.Currency, nil
}

// GetItemForUpdate reads and locks a player item row; nil means the row is absent
func (t *Tx) GetItemForUpdate(ctx context.Context, playerID int64, itemID int) (*domain.PlayerItem, error) {
	k := itemKey{playerID: playerID, itemID: itemID}
	if err := t.lock(ctx, itemLockKey(k)); err != nil {
		return nil, err
	}

	count, ok := t.item(k)
	if !ok {
		return nil, nil
	}
	return &domain.PlayerItem{PlayerID: playerID, ItemID: itemID, Count: count}, nil
}

// UpsertAdd creates the row or increments it and returns the new count
func (t *Tx) UpsertAdd(ctx context.Context, playerID int64, itemID, delta int) (int, error) {
	if delta < 0 {
		return 0, fmt.Errorf("%w: negative delta %d", domain.ErrInvalidInput, delta)
	}

	k := itemKey{playerID: playerID, itemID: itemID}
	if err := t.lock(ctx, itemLockKey(k)); err != nil {
		return 0, err
	}
	if _, ok := t.player(playerID); !ok {
		return 0, domain.ErrPlayerNotFound
	}

	count, _ := t.item(k)
	count += delta
	t.items[k] = count
	return count, nil
}

// Decrement lowers the count by amount and returns the new count
func (t *Tx) Decrement(ctx context.Context, playerID int64, itemID, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: negative amount %d", domain.ErrInvalidInput, amount)
	}

	k := itemKey{playerID: playerID, itemID: itemID}
	if err := t.lock(ctx, itemLockKey(k)); err != nil {
		return 0, err
	}

	count, ok := t.item(k)
	if !ok || count < amount {
		return 0, domain.ErrInsufficientQuantity
	}

	count -= amount
	t.items[k] = count
	return count, nil
}
