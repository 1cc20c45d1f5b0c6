package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bidorbuy/ewa/internal/core/domain"
	"github.com/bidorbuy/ewa/internal/core/ports"
)

// Context keys set by the session middleware.
const (
	KeySessionID = "session_id"
	KeySession   = "session"
)

// LoadSessionID copies the browser's session id into the request context.
func LoadSessionID(cookie *SessionCookie) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(KeySessionID, cookie.Read(c))
			return next(c)
		}
	}
}

// RequireSession redirects anonymous visitors to the login page and injects
// the session state for authenticated ones.
func RequireSession(sessions ports.SessionService, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state, err := sessions.Current(c.Request().Context(), SessionID(c))
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					return c.Redirect(http.StatusFound, loginPath)
				}
				return err
			}

			c.Set(KeySession, state)
			return next(c)
		}
	}
}

// SessionID returns the id stored by LoadSessionID.
func SessionID(c echo.Context) string {
	id, _ := c.Get(KeySessionID).(string)
	return id
}

// Session returns the state stored by RequireSession.
func Session(c echo.Context) *domain.SessionState {
	state, _ := c.Get(KeySession).(*domain.SessionState)
	return state
}
