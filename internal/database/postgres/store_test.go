package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PotionGacha_Go/internal/domain"
	"github.com/osse101/PotionGacha_Go/internal/repository"
)

func TestCreateAndGetPlayer(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreatePlayer(ctx, domain.Player{HP: 120, MP: 30, Currency: 55})
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	got, err := repo.GetPlayer(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	_, err = repo.GetPlayer(ctx, created.ID+1_000_000)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestCreatePlayer_NegativeStatsRejected(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.CreatePlayer(context.Background(), domain.Player{HP: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetPlayerItems_OrderedAndEmpty(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	id := createTestPlayer(t, repo, 0, 0, 0)

	items, err := repo.GetPlayerItems(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, items)

	seedTestItem(t, repo, id, 5, 1)
	seedTestItem(t, repo, id, 2, 4)
	seedTestItem(t, repo, id, 3, 2)

	items, err = repo.GetPlayerItems(ctx, id)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []int{2, 3, 5}, []int{items[0].ItemID, items[1].ItemID, items[2].ItemID})
	assert.Equal(t, 4, items[0].Count)

	_, err = repo.GetPlayerItems(ctx, id+1_000_000)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestUpsertAdd_CreatesThenAccumulates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	id := createTestPlayer(t, repo, 0, 0, 0)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	item, err := tx.GetItemForUpdate(ctx, id, 1)
	require.NoError(t, err)
	assert.Nil(t, item, "absent row reads as nil")

	count, err := tx.UpsertAdd(ctx, id, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = tx.UpsertAdd(ctx, id, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	require.NoError(t, tx.Commit(ctx))
	assert.Equal(t, 7, countOf(t, repo, id, 1))
}

func TestUpsertAdd_MissingPlayer(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	_, err = tx.UpsertAdd(ctx, 9_999_999, 1, 1)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestDecrement(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	id := createTestPlayer(t, repo, 0, 0, 0)
	seedTestItem(t, repo, id, 2, 2)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	count, err := tx.Decrement(ctx, id, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = tx.Decrement(ctx, id, 2, 5)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)

	_, err = tx.Decrement(ctx, id, 4, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity, "absent row")
}

func TestApplyDelta_ClampsAndReportsMax(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		start     int
		delta     int
		wantValue int
		wantAtMax bool
	}{
		{"within range", 100, 50, 150, false},
		{"clamped to ceiling", 190, 50, 200, false},
		{"already full", 200, 50, 200, true},
		{"clamped to floor", 10, -50, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := createTestPlayer(t, repo, tt.start, 0, 0)

			tx, err := repo.BeginTx(ctx)
			require.NoError(t, err)
			defer repository.SafeRollback(ctx, tx)

			value, atMax, err := tx.ApplyDelta(ctx, id, domain.StatHP, tt.delta, 0, 200)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantAtMax, atMax)
			require.NoError(t, tx.Commit(ctx))

			p, err := repo.GetPlayer(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, p.HP)
		})
	}
}

func TestApplyDelta_Errors(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	id := createTestPlayer(t, repo, 0, 0, 0)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	_, _, err = tx.ApplyDelta(ctx, id, domain.Stat("stamina"), 1, 0, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = tx.ApplyDelta(ctx, 9_999_999, domain.StatMP, 1, 0, 10)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestSpendCurrency(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	id := createTestPlayer(t, repo, 0, 0, 30)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	remaining, err := tx.SpendCurrency(ctx, id, 20)
	require.NoError(t, err)
	assert.Equal(t, 10, remaining)

	_, err = tx.SpendCurrency(ctx, id, 11)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	_, err = tx.SpendCurrency(ctx, 9_999_999, 1)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestRollback_DiscardsWrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	id := createTestPlayer(t, repo, 0, 0, 50)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	_, err = tx.SpendCurrency(ctx, id, 50)
	require.NoError(t, err)
	_, err = tx.UpsertAdd(ctx, id, 3, 9)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))

	p, err := repo.GetPlayer(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 50, p.Currency)
	assert.Zero(t, countOf(t, repo, id, 3))

	// second rollback is tolerated by SafeRollback
	repository.SafeRollback(ctx, tx)
}

func TestLockTimeout_SurfacesAsTransactionFailure(t *testing.T) {
	requireDB(t)
	repo := NewInventoryRepository(testPool, 200*time.Millisecond)
	ctx := context.Background()
	id := createTestPlayer(t, repo, 0, 0, 0)

	holder, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, holder)
	_, err = holder.GetPlayerForUpdate(ctx, id)
	require.NoError(t, err)

	waiter, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, waiter)

	start := time.Now()
	_, err = waiter.GetPlayerForUpdate(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTransactionFailed), "got %v", err)
	assert.Less(t, time.Since(start), 2*time.Second)
}
