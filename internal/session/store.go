package session

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/TCGTourney_Go/internal/tournament"
)

// entry is one hosted tournament
type entry struct {
	id        string
	session   *tournament.Session
	createdAt time.Time
	updatedAt time.Time
}

// store keeps sessions in memory, dropping the least recently used ones
// past size and any left untouched for ttl.
type store struct {
	mu  sync.Mutex // orders inserts against refreshes
	lru *expirable.LRU[string, *entry]
}

func newStore(size int, ttl time.Duration, onEvict func(id string)) *store {
	var cb expirable.EvictCallback[string, *entry]
	if onEvict != nil {
		cb = func(key string, _ *entry) { onEvict(key) }
	}
	return &store{
		lru: expirable.NewLRU[string, *entry](size, cb, ttl),
	}
}

func (s *store) Get(id string) (*entry, bool) {
	return s.lru.Get(id)
}

// Put inserts an entry, restarting its TTL
func (s *store) Put(e *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.updatedAt = time.Now()
	s.lru.Add(e.id, e)
}

// Refresh restarts the TTL of an entry that is still held. An entry evicted
// while it was in use stays gone and Refresh reports false.
func (s *store) Refresh(e *entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.lru.Peek(e.id); !ok || current != e {
		return false
	}
	e.updatedAt = time.Now()
	s.lru.Add(e.id, e)
	return true
}

func (s *store) Remove(id string) bool {
	return s.lru.Remove(id)
}

func (s *store) Len() int {
	return s.lru.Len()
}

func (s *store) Purge() {
	s.lru.Purge()
}
