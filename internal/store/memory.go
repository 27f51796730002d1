package store

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore is an in-process AttributeStore for tests and local runs.
type MemoryStore struct {
	mu    sync.Mutex
	users map[string]map[string]any
}

// NewMemory creates an empty in-memory attribute store.
func NewMemory() *MemoryStore {
	return &MemoryStore{users: map[string]map[string]any{}}
}

// Load returns a copy of the stored attributes; a miss returns an empty map.
func (s *MemoryStore) Load(_ context.Context, userID string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attrs, ok := s.users[userID]
	if !ok {
		return map[string]any{}, nil
	}
	return maps.Clone(attrs), nil
}

// Save overwrites the user's attributes with a copy of the given map.
func (s *MemoryStore) Save(_ context.Context, userID string, attrs map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[userID] = maps.Clone(attrs)
	return nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
