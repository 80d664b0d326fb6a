package cache

import (
	"sync"
	"time"
)

// Entry is a cached value together with the time it was stored.
type Entry[T any] struct {
	Value     T
	FetchedAt time.Time
}

// Store is an in-memory key-value store with a fixed time-to-live.
//
// Get returns entries regardless of age; whether a stale entry is usable is
// the caller's decision. Entries are replaced wholesale on Put and never
// evicted, so memory is bounded by the number of distinct keys.
type Store[T any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]Entry[T]
	now     func() time.Time
}

// New creates a Store with the given time-to-live, applied uniformly to all
// keys.
func New[T any](ttl time.Duration) *Store[T] {
	return &Store[T]{
		ttl:     ttl,
		entries: make(map[string]Entry[T]),
		now:     time.Now,
	}
}

// Get returns the entry for key, if any, regardless of its age.
func (s *Store[T]) Get(key string) (Entry[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ent, ok := s.entries[key]
	return ent, ok
}

// IsValid reports whether an entry exists for key and is younger than the
// TTL.
func (s *Store[T]) IsValid(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ent, ok := s.entries[key]
	return ok && s.now().Sub(ent.FetchedAt) < s.ttl
}

// Put stores value under key, replacing any existing entry and stamping the
// fetch time. Readers observe either the old entry or the new one, never a
// mix.
func (s *Store[T]) Put(key string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = Entry[T]{Value: value, FetchedAt: s.now()}
}

// TTL returns the configured time-to-live.
func (s *Store[T]) TTL() time.Duration {
	return s.ttl
}
