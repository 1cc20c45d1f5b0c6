package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/bidorbuy/ewa/internal/core/domain"
)

const opaqueTokenPrefix = "demo-token-"

// OpaqueTokenIssuer mints random tokens that carry no claims.
type OpaqueTokenIssuer struct{}

func NewOpaqueTokenIssuer() *OpaqueTokenIssuer {
	return &OpaqueTokenIssuer{}
}

func (OpaqueTokenIssuer) Issue(_ *domain.Credential) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}
	return opaqueTokenPrefix + strings.ReplaceAll(id.String(), "-", ""), nil
}

// JWTTokenIssuer mints HS256 tokens. Nothing downstream verifies them; the
// claims are there for whoever inspects the token.
type JWTTokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTTokenIssuer(secret string, ttl time.Duration) *JWTTokenIssuer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &JWTTokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *JWTTokenIssuer) Issue(cred *domain.Credential) (string, error) {
	now := i.now()
	claims := jwt.MapClaims{
		"sub":   cred.Username,
		"role":  cred.Role,
		"email": cred.Email,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}
