package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bidorbuy/ewa/internal/core/domain"
)

const defaultIdleTimeout = 30 * time.Minute

// SessionStore keeps session state in Redis.
// Key format: session:<session_id>. Each read resets the key TTL.
type SessionStore struct {
	client *redis.Client
	idle   time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client, idle time.Duration) *SessionStore {
	if idle <= 0 {
		idle = defaultIdleTimeout
	}
	return &SessionStore{client: client, idle: idle}
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	raw, err := s.client.GetEx(ctx, s.key(sessionID), s.idle).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("session get: %w", err)
	}

	var state domain.SessionState
	if err := json.Unmarshal(raw, &state); err != nil || !state.Complete() {
		_ = s.client.Del(ctx, s.key(sessionID)).Err()
		return nil, domain.ErrSessionNotFound
	}
	return &state, nil
}

func (s *SessionStore) Set(ctx context.Context, sessionID string, state domain.SessionState) error {
	if !state.Complete() {
		return domain.ErrIncompleteSession
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sessionID), raw, s.idle).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}

// Ping checks Redis connectivity.
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *SessionStore) key(sessionID string) string {
	return "session:" + sessionID
}
