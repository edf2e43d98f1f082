package concurrency

import (
	"context"
	"sync"
)

// LockManager handles named locks that can be waited on with a deadline.
// A key does not need to exist anywhere else to be locked, so callers can
// serialize work on rows that have not been created yet.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

func (lm *LockManager) slot(key string) chan struct{} {
	sem, _ := lm.locks.LoadOrStore(key, make(chan struct{}, 1))
	return sem.(chan struct{})
}

// Acquire blocks until the lock for key is held or ctx is done
func (lm *LockManager) Acquire(ctx context.Context, key string) error {
	sem := lm.slot(key)
	select {
	case sem <- struct{}{}:
		return nil
	default:
	}

	select {
	case sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryAcquire takes the lock for key only if it is free
func (lm *LockManager) TryAcquire(key string) bool {
	select {
	case lm.slot(key) <- struct{}{}:
		return true
	default:
		return false
	}
}

// Release frees the lock for key. Releasing a key that is not held is a no-op.
func (lm *LockManager) Release(key string) {
	select {
	case <-lm.slot(key):
	default:
	}
}
