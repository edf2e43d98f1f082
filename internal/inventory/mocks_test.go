package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PotionGacha_Go/internal/catalog"
	"github.com/osse101/PotionGacha_Go/internal/database/memory"
	"github.com/osse101/PotionGacha_Go/internal/domain"
	"github.com/osse101/PotionGacha_Go/internal/repository"
)

// MockRepository implements repository.Inventory for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreatePlayer(ctx context.Context, player domain.Player) (*domain.Player, error) {
	args := m.Called(ctx, player)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockRepository) GetPlayer(ctx context.Context, playerID int64) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockRepository) GetPlayerItems(ctx context.Context, playerID int64) ([]domain.PlayerItem, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlayerItem), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.InventoryTx), args.Error(1)
}

// MockTx implements repository.InventoryTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) GetPlayerForUpdate(ctx context.Context, playerID int64) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockTx) ApplyDelta(ctx context.Context, playerID int64, stat domain.Stat, delta, floor, ceiling int) (int, bool, error) {
	args := m.Called(ctx, playerID, stat, delta, floor, ceiling)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockTx) SpendCurrency(ctx context.Context, playerID int64, amount int) (int, error) {
	args := m.Called(ctx, playerID, amount)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) GetItemForUpdate(ctx context.Context, playerID int64, itemID int) (*domain.PlayerItem, error) {
	args := m.Called(ctx, playerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerItem), args.Error(1)
}

func (m *MockTx) UpsertAdd(ctx context.Context, playerID int64, itemID, delta int) (int, error) {
	args := m.Called(ctx, playerID, itemID, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) Decrement(ctx context.Context, playerID int64, itemID, amount int) (int, error) {
	args := m.Called(ctx, playerID, itemID, amount)
	return args.Int(0), args.Error(1)
}

// stubDrawer returns a preset outcome regardless of the requested count
type stubDrawer struct {
	outcome []int
}

func (d stubDrawer) Draw(n int) []int {
	out := make([]int, len(d.outcome))
	copy(out, d.outcome)
	return out
}

// faultyRepo wraps a real store so individual transaction steps can be made to fail
type faultyRepo struct {
	*memory.Store
	failUpsert    error
	failDecrement error
	failCommit    error
}

func (r *faultyRepo) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	tx, err := r.Store.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	return &faultyTx{InventoryTx: tx, repo: r}, nil
}

type faultyTx struct {
	repository.InventoryTx
	repo *faultyRepo
}

func (t *faultyTx) UpsertAdd(ctx context.Context, playerID int64, itemID, delta int) (int, error) {
	if t.repo.failUpsert != nil {
		return 0, t.repo.failUpsert
	}
	return t.InventoryTx.UpsertAdd(ctx, playerID, itemID, delta)
}

func (t *faultyTx) Decrement(ctx context.Context, playerID int64, itemID, amount int) (int, error) {
	if t.repo.failDecrement != nil {
		return 0, t.repo.failDecrement
	}
	return t.InventoryTx.Decrement(ctx, playerID, itemID, amount)
}

func (t *faultyTx) Commit(ctx context.Context) error {
	if t.repo.failCommit != nil {
		return t.repo.failCommit
	}
	return t.InventoryTx.Commit(ctx)
}

// ==================== Fixtures ====================

const testLockTimeout = 2 * time.Second

func newStore() *memory.Store {
	return memory.NewStore(testLockTimeout)
}

func newServiceWith(repo repository.Inventory, drawer Drawer) Service {
	return NewService(repo, catalog.Default(), drawer, domain.DefaultLimits())
}

func createPlayer(t *testing.T, store *memory.Store, hp, mp, currency int) int64 {
	t.Helper()
	p, err := store.CreatePlayer(context.Background(), domain.Player{HP: hp, MP: mp, Currency: currency})
	require.NoError(t, err)
	return p.ID
}

func seedItem(t *testing.T, store *memory.Store, playerID int64, itemID, count int) {
	t.Helper()
	ctx := context.Background()
	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	_, err = tx.UpsertAdd(ctx, playerID, itemID, count)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
}

func itemCount(t *testing.T, store *memory.Store, playerID int64, itemID int) int {
	t.Helper()
	items, err := store.GetPlayerItems(context.Background(), playerID)
	require.NoError(t, err)
	for _, it := range items {
		if it.ItemID == itemID {
			return it.Count
		}
	}
	return 0
}

func playerState(t *testing.T, store *memory.Store, playerID int64) domain.Player {
	t.Helper()
	p, err := store.GetPlayer(context.Background(), playerID)
	require.NoError(t, err)
	return *p
}
