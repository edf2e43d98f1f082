// Package memory is an in-process storage engine for players and their
// items. Transactions stage their writes privately and hold per-row locks
// until Commit or Rollback, so it gives the same isolation guarantees the
// inventory service relies on from PostgreSQL.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/PotionGacha_Go/internal/concurrency"
	"github.com/osse101/PotionGacha_Go/internal/domain"
	"github.com/osse101/PotionGacha_Go/internal/repository"
)

type itemKey struct {
	playerID int64
	itemID   int
}

// Store implements repository.Inventory in memory
type Store struct {
	mu      sync.RWMutex
	players map[int64]domain.Player
	items   map[itemKey]int
	nextID  int64

	locks       *concurrency.LockManager
	lockTimeout time.Duration
}

var _ repository.Inventory = (*Store)(nil)

// NewStore creates an empty store. A positive lockTimeout bounds every row lock wait.
func NewStore(lockTimeout time.Duration) *Store {
	return &Store{
		players:     make(map[int64]domain.Player),
		items:       make(map[itemKey]int),
		locks:       concurrency.NewLockManager(),
		lockTimeout: lockTimeout,
	}
}

// CreatePlayer stores a player with the next free id
func (s *Store) CreatePlayer(ctx context.Context, player domain.Player) (*domain.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if player.HP < 0 || player.MP < 0 || player.Currency < 0 {
		return nil, fmt.Errorf("%w: negative starting stats", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	player.ID = s.nextID
	s.players[player.ID] = player
	return &player, nil
}

// GetPlayer returns the committed state of a player
func (s *Store) GetPlayer(ctx context.Context, playerID int64) (*domain.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return &p, nil
}

// GetPlayerItems returns the committed item rows of a player ordered by item id
func (s *Store) GetPlayerItems(ctx context.Context, playerID int64) ([]domain.PlayerItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.players[playerID]; !ok {
		return nil, domain.ErrPlayerNotFound
	}

	items := []domain.PlayerItem{}
	for k, count := range s.items {
		if k.playerID == playerID {
			items = append(items, domain.PlayerItem{PlayerID: playerID, ItemID: k.itemID, Count: count})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })
	return items, nil
}

// BeginTx starts a new transaction
func (s *Store) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &Tx{
		store:   s,
		held:    make(map[string]struct{}),
		players: make(map[int64]domain.Player),
		items:   make(map[itemKey]int),
	}, nil
}

// Ping always succeeds while the process is alive
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op kept so the store can stand in for a connection pool
func (s *Store) Close() {}

func (s *Store) committedPlayer(playerID int64) (domain.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[playerID]
	return p, ok
}

func (s *Store) committedItem(k itemKey) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count, ok := s.items[k]
	return count, ok
}

func (s *Store) apply(players map[int64]domain.Player, items map[itemKey]int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range players {
		s.players[id] = p
	}
	for k, count := range items {
		s.items[k] = count
	}
}
