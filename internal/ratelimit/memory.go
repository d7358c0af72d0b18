package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store for development and tests. Counters do
// not survive a restart; production deployments use PgStore or RedisStore.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]*counter
	now      func() time.Time
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counters: make(map[string]*counter),
		now:      time.Now,
	}
}

var _ Store = (*MemoryStore)(nil)

// Allow implements Store. The whole check-and-increment runs under one lock,
// so concurrent callers racing for the last slot admit exactly one.
func (s *MemoryStore) Allow(_ context.Context, identifier string, window time.Duration, max int) (bool, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Sweep expired counters; an expired counter is logically absent.
	for id, c := range s.counters {
		if !c.expiresAt.After(now) {
			delete(s.counters, id)
		}
	}

	c, ok := s.counters[identifier]
	if !ok {
		s.counters[identifier] = &counter{count: 1, expiresAt: now.Add(window)}
		return true, nil
	}
	if c.count >= max {
		return false, nil
	}
	c.count++
	return true, nil
}
