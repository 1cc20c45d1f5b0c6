package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bidorbuy/ewa/internal/core/domain"
	"github.com/bidorbuy/ewa/internal/core/ports"
)

type sessionService struct {
	identity ports.IdentityService
	sessions ports.SessionStore
	log      zerolog.Logger
}

// NewSessionService returns the web frontend's login flow. identity is
// normally the remote Identity API client.
func NewSessionService(identity ports.IdentityService, sessions ports.SessionStore, log zerolog.Logger) ports.SessionService {
	return &sessionService{
		identity: identity,
		sessions: sessions,
		log:      log,
	}
}

// State reports Authenticated when a complete session is stored for the id.
func (s *sessionService) State(ctx context.Context, sessionID string) (domain.LoginState, error) {
	if _, err := s.Current(ctx, sessionID); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return domain.StateAnonymous, nil
		}
		return domain.StateAnonymous, err
	}
	return domain.StateAuthenticated, nil
}

// Login authenticates against the identity service and, on success, stores
// the returned identity under sessionID. Failures leave the session absent.
func (s *sessionService) Login(ctx context.Context, sessionID, username, password string) (*domain.SessionState, error) {
	if domain.IsBlank(username) || domain.IsBlank(password) {
		return nil, domain.ErrValidation
	}
	if sessionID == "" {
		return nil, fmt.Errorf("login: empty session id")
	}

	log := s.log.With().Str("username", username).Logger()
	log.Debug().Str("state", string(domain.StateAuthenticating)).Msg("login flow")

	result, err := s.identity.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrServiceUnavailable):
			log.Error().Err(err).Msg("identity service unreachable")
		case errors.Is(err, domain.ErrInvalidCredentials):
			log.Info().Msg("invalid credentials")
		default:
			log.Warn().Err(err).Msg("login failed")
		}
		return nil, err
	}
	if !result.Complete() {
		log.Warn().Msg("identity response missing fields")
		return nil, domain.ErrUnexpectedResponse
	}

	state := domain.NewSessionState(result)
	if err := s.sessions.Set(ctx, sessionID, state); err != nil {
		return nil, fmt.Errorf("login: store session: %w", err)
	}

	log.Info().Str("state", string(domain.StateAuthenticated)).Str("role", state.Role).Msg("login flow")
	return &state, nil
}

func (s *sessionService) Current(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	if sessionID == "" {
		return nil, domain.ErrSessionNotFound
	}
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !state.Complete() {
		return nil, domain.ErrSessionNotFound
	}
	return state, nil
}

func (s *sessionService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Debug().Str("state", string(domain.StateLoggedOut)).Msg("login flow")
	return nil
}
