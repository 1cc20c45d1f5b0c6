package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bidorbuy/ewa/internal/core/domain"
)

type stubCredentialRepo struct {
	users map[string]*domain.Credential
	err   error
}

func newStubCredentialRepo(t *testing.T) *stubCredentialRepo {
	t.Helper()
	repo := &stubCredentialRepo{users: make(map[string]*domain.Credential)}
	for _, a := range domain.DemoAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash password: %v", err)
		}
		repo.users[strings.ToLower(a.Username)] = &domain.Credential{
			Username:     a.Username,
			PasswordHash: string(hash),
			FullName:     a.FullName,
			Role:         a.Role,
			Email:        a.Email,
		}
	}
	return repo
}

func (r *stubCredentialRepo) FindByUsername(_ context.Context, username string) (*domain.Credential, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[strings.ToLower(username)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type failingIssuer struct{}

func (failingIssuer) Issue(*domain.Credential) (string, error) {
	return "", errors.New("entropy exhausted")
}

func newAuthSvc(t *testing.T) *AuthService {
	return NewAuthService(newStubCredentialRepo(t), nil, zerolog.Nop())
}

func TestAuthService_Login_AllDemoAccounts(t *testing.T) {
	svc := newAuthSvc(t)

	for _, a := range domain.DemoAccounts {
		for _, name := range []string{a.Username, strings.ToUpper(a.Username)} {
			res, err := svc.Login(context.Background(), name, a.Password)
			if err != nil {
				t.Fatalf("login %s: %v", name, err)
			}
			if res.Username != a.Username || res.FullName != a.FullName || res.Role != a.Role || res.Email != a.Email {
				t.Fatalf("unexpected result for %s: %+v", name, res)
			}
			if !strings.HasPrefix(res.Token, opaqueTokenPrefix) {
				t.Fatalf("unexpected token format: %s", res.Token)
			}
		}
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc := newAuthSvc(t)

	cases := []struct{ username, password string }{
		{"buyer1", "wrong"},
		{"buyer1", "PASS123"},
		{"ghost", "pass123"},
		{"seller1", "pass1234"},
	}
	for _, tc := range cases {
		_, err := svc.Login(context.Background(), tc.username, tc.password)
		if err != domain.ErrInvalidCredentials {
			t.Fatalf("%s/%s: expected ErrInvalidCredentials, got %v", tc.username, tc.password, err)
		}
	}
}

func TestAuthService_Login_Validation(t *testing.T) {
	svc := newAuthSvc(t)

	cases := []struct{ username, password string }{
		{"", "x"},
		{"x", ""},
		{"   ", "pass123"},
		{"buyer1", "\t"},
	}
	for _, tc := range cases {
		if _, err := svc.Login(context.Background(), tc.username, tc.password); err != domain.ErrValidation {
			t.Fatalf("%q/%q: expected ErrValidation, got %v", tc.username, tc.password, err)
		}
	}
}

func TestAuthService_Login_FreshTokenPerLogin(t *testing.T) {
	svc := newAuthSvc(t)

	first, err := svc.Login(context.Background(), "admin1", "pass123")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := svc.Login(context.Background(), "admin1", "pass123")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if first.Token == second.Token {
		t.Fatalf("expected distinct tokens, got %s twice", first.Token)
	}
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	repo := newStubCredentialRepo(t)
	repo.err = errors.New("boom")
	svc := NewAuthService(repo, nil, zerolog.Nop())

	_, err := svc.Login(context.Background(), "buyer1", "pass123")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestAuthService_Login_IssuerError(t *testing.T) {
	svc := NewAuthService(newStubCredentialRepo(t), failingIssuer{}, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "buyer1", "pass123"); err == nil {
		t.Fatalf("expected issuer error")
	}
}

func TestJWTTokenIssuer_Claims(t *testing.T) {
	issuer := NewJWTTokenIssuer("secret", time.Hour)
	svc := NewAuthService(newStubCredentialRepo(t), issuer, zerolog.Nop())

	res, err := svc.Login(context.Background(), "Seller1", "pass123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(res.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != "seller1" || claims["role"] != domain.RoleSeller {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims["jti"] == "" {
		t.Fatalf("expected jti claim")
	}
}
