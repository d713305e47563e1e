package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Callers holding the lock for a
// key are serialized; different keys never block each other.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the lock for key
func (lm *LockManager) WithLock(key string, fn func() error) error {
	lock := lm.GetLock(key)
	lock.Lock()
	defer lock.Unlock()
	return fn()
}

// Remove forgets the mutex for key. Goroutines already holding or waiting on
// it keep their reference; the next GetLock creates a fresh one.
func (lm *LockManager) Remove(key string) {
	lm.locks.Delete(key)
}

// Len counts the keys currently tracked
func (lm *LockManager) Len() int {
	n := 0
	lm.locks.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
