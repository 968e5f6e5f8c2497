package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/pastebutton/internal/logging"
	backend "github.com/redis/go-redis/v9"
)

// SessionStore implements ports.SessionStore using one Redis hash per session.
// Values are stored as JSON so lists survive the round trip.
type SessionStore struct {
	client    *backend.Client
	sessionID string
	prefix    string
	ttl       time.Duration
	logger    *slog.Logger
}

type Option func(*SessionStore)

// WithTTL sets the expiration for sessions. It is refreshed on every write.
func WithTTL(ttl time.Duration) Option {
	return func(s *SessionStore) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for sessions.
func WithPrefix(prefix string) Option {
	return func(s *SessionStore) {
		s.prefix = prefix
	}
}

// WithLogger configures a logger for lookup failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *SessionStore) {
		s.logger = logger
	}
}

// New creates a new Redis session store with options.
func New(address, password string, db int, sessionID string, opts ...Option) *SessionStore {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, sessionID, opts...)
}

// NewFromClient creates a new Redis session store from an existing client.
func NewFromClient(client *backend.Client, sessionID string, opts ...Option) *SessionStore {
	store := &SessionStore{
		client:    client,
		sessionID: sessionID,
		prefix:    "pastebutton:session:",
		ttl:       0, // No expiration by default
		logger:    logging.NewNop(),
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *SessionStore) key() string {
	return s.prefix + s.sessionID
}

// Get reads one session entry.
// Redis failures are logged and reported as a miss: session state is optional.
func (s *SessionStore) Get(ctx context.Context, key string) (any, bool) {
	val, err := s.client.HGet(ctx, s.key(), key).Result()
	if err != nil {
		if !errors.Is(err, backend.Nil) {
			s.logger.Warn("Session lookup failed", "session_id", s.sessionID, "key", key, "error", err)
		}
		return nil, false
	}

	var value any
	if err := json.Unmarshal([]byte(val), &value); err != nil {
		// Written by something other than Set (e.g. redis-cli); use it verbatim.
		return val, true
	}
	return value, true
}

// Set persists one session entry.
func (s *SessionStore) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal session value: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.HSet(ctx, s.key(), key, data)
	if s.ttl > 0 {
		pipe.Expire(ctx, s.key(), s.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Delete removes one session entry.
func (s *SessionStore) Delete(ctx context.Context, key string) error {
	if err := s.client.HDel(ctx, s.key(), key).Err(); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (s *SessionStore) Close() error {
	return s.client.Close()
}
