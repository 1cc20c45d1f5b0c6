package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bidorbuy/ewa/internal/core/domain"
	"github.com/bidorbuy/ewa/internal/core/ports"
	"github.com/bidorbuy/ewa/internal/pkg/metrics"
	"github.com/bidorbuy/ewa/internal/pkg/validation"
	"github.com/bidorbuy/ewa/internal/web/middleware"
	"github.com/bidorbuy/ewa/internal/web/view"
)

// Frontend routes.
const (
	PathLogin = "/Login"
	PathHome  = "/Home"
)

// LoginHandler serves the login form.
type LoginHandler struct {
	sessions ports.SessionService
	cookie   *middleware.SessionCookie
	log      zerolog.Logger
}

func NewLoginHandler(sessions ports.SessionService, cookie *middleware.SessionCookie, log zerolog.Logger) *LoginHandler {
	return &LoginHandler{sessions: sessions, cookie: cookie, log: log}
}

type loginForm struct {
	Username string `form:"username" validate:"notblank"`
	Password string `form:"password" validate:"notblank"`
}

// Show handles GET /Login. Authenticated visitors go straight to /Home.
func (h *LoginHandler) Show(c echo.Context) error {
	state, err := h.sessions.State(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	if state == domain.StateAuthenticated {
		return c.Redirect(http.StatusFound, PathHome)
	}
	return h.render(c, view.LoginPage{})
}

// Submit handles POST /Login.
func (h *LoginHandler) Submit(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		metrics.WebLoginsTotal.WithLabelValues(metrics.OutcomeInvalidRequest).Inc()
		return h.render(c, view.LoginPage{ErrorMessage: msgUnexpected})
	}

	page := view.LoginPage{Username: form.Username}
	if err := c.Validate(&form); err != nil {
		metrics.WebLoginsTotal.WithLabelValues(metrics.OutcomeInvalidRequest).Inc()
		var fe validation.Errors
		if errors.As(err, &fe) {
			page.FieldErrors = fe
		} else {
			page.ErrorMessage = msgUnexpected
		}
		return h.render(c, page)
	}

	ctx := c.Request().Context()
	previous := middleware.SessionID(c)

	newID, err := middleware.NewSessionID()
	if err != nil {
		return err
	}

	if _, err := h.sessions.Login(ctx, newID, form.Username, form.Password); err != nil {
		msg, outcome := loginFailure(err)
		metrics.WebLoginsTotal.WithLabelValues(outcome).Inc()
		if outcome == metrics.OutcomeError {
			h.log.Error().Err(err).Msg("login failed")
		}
		page.ErrorMessage = msg
		return h.render(c, page)
	}
	metrics.WebLoginsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()

	// Rotate the id so a pre-login cookie never becomes an authenticated one.
	if previous != "" {
		if err := h.sessions.Logout(ctx, previous); err != nil {
			h.log.Warn().Err(err).Msg("failed to clear previous session")
		}
	}
	h.cookie.Set(c, newID)

	return c.Redirect(http.StatusFound, PathHome)
}

func (h *LoginHandler) render(c echo.Context, page view.LoginPage) error {
	page.CSRFToken = csrfToken(c)
	return c.Render(http.StatusOK, view.PageLogin, page)
}

func csrfToken(c echo.Context) string {
	token, _ := c.Get(middleware.KeyCSRF).(string)
	return token
}
