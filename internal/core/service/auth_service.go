package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bidorbuy/ewa/internal/core/domain"
	"github.com/bidorbuy/ewa/internal/core/ports"
)

// AuthService validates logins against the credential table.
type AuthService struct {
	repo   ports.CredentialRepository
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.CredentialRepository, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	if tokens == nil {
		tokens = NewOpaqueTokenIssuer()
	}
	return &AuthService{repo: repo, tokens: tokens, log: log}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	if domain.IsBlank(username) || domain.IsBlank(password) {
		return nil, domain.ErrValidation
	}

	cred, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same bcrypt cost as a real mismatch.
			_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
			s.log.Warn().Str("username", username).Msg("login rejected")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		s.log.Warn().Str("username", username).Msg("login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(cred)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.log.Info().Str("username", cred.Username).Str("role", cred.Role).Msg("login succeeded")

	return &domain.LoginResult{
		Token:    token,
		Username: cred.Username,
		FullName: cred.FullName,
		Role:     cred.Role,
		Email:    cred.Email,
	}, nil
}

var (
	dummyOnce sync.Once
	dummy     []byte
)

func dummyHash() []byte {
	dummyOnce.Do(func() {
		dummy, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	})
	return dummy
}
