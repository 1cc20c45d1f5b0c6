package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bidorbuy/ewa/internal/core/domain"
)

const DefaultIdleTimeout = 30 * time.Minute

type sessionEntry struct {
	state     domain.SessionState
	expiresAt time.Time
}

// SessionStore keeps sessions in process memory with a sliding idle expiry.
type SessionStore struct {
	mu      sync.Mutex
	entries map[string]sessionEntry
	idle    time.Duration
	now     func() time.Time
}

func NewSessionStore(idle time.Duration) *SessionStore {
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	return &SessionStore{
		entries: make(map[string]sessionEntry),
		idle:    idle,
		now:     time.Now,
	}
}

func (s *SessionStore) Get(_ context.Context, sessionID string) (*domain.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	now := s.now()
	if !now.Before(e.expiresAt) {
		delete(s.entries, sessionID)
		return nil, domain.ErrSessionNotFound
	}

	e.expiresAt = now.Add(s.idle)
	s.entries[sessionID] = e

	state := e.state
	return &state, nil
}

func (s *SessionStore) Set(_ context.Context, sessionID string, state domain.SessionState) error {
	if !state.Complete() {
		return domain.ErrIncompleteSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = sessionEntry{state: state, expiresAt: s.now().Add(s.idle)}
	return nil
}

func (s *SessionStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.entries, sessionID)
	s.mu.Unlock()
	return nil
}

// Sweep drops every expired session and returns how many were removed.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is cancelled.
func (s *SessionStore) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Ping always succeeds; it lets the store take part in readiness checks.
func (s *SessionStore) Ping(context.Context) error {
	return nil
}
