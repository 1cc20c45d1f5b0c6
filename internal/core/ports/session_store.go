package ports

import (
	"context"

	"github.com/bidorbuy/ewa/internal/core/domain"
)

// SessionStore holds session state keyed by the browser session identifier.
//
// Get returns domain.ErrSessionNotFound when the id is unknown or expired and
// extends the idle expiry otherwise. Set rejects incomplete states with
// domain.ErrIncompleteSession. Clear is a no-op for unknown ids.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*domain.SessionState, error)
	Set(ctx context.Context, sessionID string, state domain.SessionState) error
	Clear(ctx context.Context, sessionID string) error
}
