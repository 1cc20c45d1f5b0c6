package memory

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/bidorbuy/ewa/internal/core/domain"
)

// CredentialRepository serves a fixed credential table. It is read-only after
// construction and safe for concurrent use.
type CredentialRepository struct {
	byUsername map[string]domain.Credential
}

// NewCredentialRepository hashes the account passwords with the given bcrypt
// cost and indexes the records by lower-cased username.
func NewCredentialRepository(accounts []domain.Account, cost int) (*CredentialRepository, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}

	r := &CredentialRepository{byUsername: make(map[string]domain.Credential, len(accounts))}
	for _, a := range accounts {
		key := strings.ToLower(a.Username)
		if _, dup := r.byUsername[key]; dup {
			return nil, fmt.Errorf("seed credentials: duplicate username %q", a.Username)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("seed credentials: hash %q: %w", a.Username, err)
		}
		r.byUsername[key] = domain.Credential{
			Username:     a.Username,
			PasswordHash: string(hash),
			FullName:     a.FullName,
			Role:         a.Role,
			Email:        a.Email,
		}
	}
	return r, nil
}

func (r *CredentialRepository) FindByUsername(_ context.Context, username string) (*domain.Credential, error) {
	cred, ok := r.byUsername[strings.ToLower(username)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &cred, nil
}

// Len returns the number of seeded records.
func (r *CredentialRepository) Len() int {
	return len(r.byUsername)
}
