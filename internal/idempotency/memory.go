package idempotency

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time
}

type memoryStore struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]entry
}

// NewMemory returns a process local Store. Expired keys are dropped on access.
func NewMemory() Store {
	return newMemory(time.Now)
}

func newMemory(now func() time.Time) *memoryStore {
	return &memoryStore{now: now, entries: make(map[string]entry)}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.lookup(key)
	if !ok {
		return "", false, nil
	}
	return e.value, true, nil
}

func (s *memoryStore) Put(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lookup(key); ok {
		return false, nil
	}
	s.entries[key] = entry{value: value, expiresAt: s.now().Add(ttl)}
	return true, nil
}

// lookup must be called with mu held.
func (s *memoryStore) lookup(key string) (entry, bool) {
	e, ok := s.entries[key]
	if !ok {
		return entry{}, false
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return entry{}, false
	}
	return e, true
}
