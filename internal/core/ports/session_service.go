package ports

import (
	"context"

	"github.com/bidorbuy/ewa/internal/core/domain"
)

// SessionService drives the browser login flow on the web frontend.
type SessionService interface {
	State(ctx context.Context, sessionID string) (domain.LoginState, error)
	Login(ctx context.Context, sessionID, username, password string) (*domain.SessionState, error)
	Current(ctx context.Context, sessionID string) (*domain.SessionState, error)
	Logout(ctx context.Context, sessionID string) error
}
