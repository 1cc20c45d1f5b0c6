package middleware

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

const DefaultCookieName = "bidorbuy_session"

// SessionCookie issues and reads the opaque session identifier cookie. The
// cookie carries no expiry of its own; idle expiry is enforced by the store.
type SessionCookie struct {
	Name   string
	Secure bool
}

func NewSessionCookie(name string, secure bool) *SessionCookie {
	if name == "" {
		name = DefaultCookieName
	}
	return &SessionCookie{Name: name, Secure: secure}
}

// Read returns the session id sent by the browser, or "".
func (s *SessionCookie) Read(c echo.Context) string {
	ck, err := c.Cookie(s.Name)
	if err != nil {
		return ""
	}
	return ck.Value
}

// Set sends the session id to the browser.
func (s *SessionCookie) Set(c echo.Context, sessionID string) {
	c.SetCookie(s.cookie(sessionID, 0))
}

// Expire tells the browser to drop the session cookie.
func (s *SessionCookie) Expire(c echo.Context) {
	c.SetCookie(s.cookie("", -1))
}

func (s *SessionCookie) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     s.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// NewSessionID returns 32 random bytes, base64url encoded.
func NewSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
