package ports

import (
	"context"

	"github.com/bidorbuy/ewa/internal/core/domain"
)

// IdentityService authenticates a username/password pair. It is implemented
// locally by service.AuthService and remotely by the Identity API client.
type IdentityService interface {
	Login(ctx context.Context, username, password string) (*domain.LoginResult, error)
}

// TokenIssuer mints the per-login token returned with a successful login.
type TokenIssuer interface {
	Issue(cred *domain.Credential) (string, error)
}
