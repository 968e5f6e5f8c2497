package memory

import (
	"context"
	"slices"
	"sync"
)

// SessionStore implements ports.SessionStore in memory.
// Safe for concurrent use.
type SessionStore struct {
	data map[string]any
	mu   sync.RWMutex
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		data: make(map[string]any),
	}
}

// Get returns the value stored under key.
func (s *SessionStore) Get(ctx context.Context, key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, false
	}
	return cloneValue(value), true
}

// Set stores value under key.
func (s *SessionStore) Set(ctx context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = cloneValue(value)
	return nil
}

// Delete removes key.
func (s *SessionStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Copy slices so callers cannot mutate stored state through a shared backing array.
func cloneValue(value any) any {
	switch v := value.(type) {
	case []any:
		return slices.Clone(v)
	case []string:
		return slices.Clone(v)
	default:
		return value
	}
}
