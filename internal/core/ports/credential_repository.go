package ports

import (
	"context"

	"github.com/bidorbuy/ewa/internal/core/domain"
)

// CredentialRepository looks up seeded credential records.
// FindByUsername matches case-insensitively and returns domain.ErrUserNotFound
// when no record matches.
type CredentialRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Credential, error)
}
