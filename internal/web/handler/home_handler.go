package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bidorbuy/ewa/internal/core/domain"
	"github.com/bidorbuy/ewa/internal/core/ports"
	"github.com/bidorbuy/ewa/internal/pkg/metrics"
	"github.com/bidorbuy/ewa/internal/web/middleware"
	"github.com/bidorbuy/ewa/internal/web/view"
)

// HomeHandler serves the personalised catalog page.
type HomeHandler struct {
	sessions ports.SessionService
	cookie   *middleware.SessionCookie
	catalog  domain.Catalog
	log      zerolog.Logger
}

func NewHomeHandler(sessions ports.SessionService, cookie *middleware.SessionCookie, catalog domain.Catalog, log zerolog.Logger) *HomeHandler {
	return &HomeHandler{sessions: sessions, cookie: cookie, catalog: catalog, log: log}
}

// Show handles GET /Home. It must sit behind middleware.RequireSession.
func (h *HomeHandler) Show(c echo.Context) error {
	state := middleware.Session(c)
	if state == nil {
		return c.Redirect(http.StatusFound, PathLogin)
	}

	return c.Render(http.StatusOK, view.PageHome, view.HomePage{
		Username:   state.Username,
		FullName:   state.FullName,
		Role:       state.Role,
		Email:      state.Email,
		Categories: h.catalog.Categories,
		TopItems:   h.catalog.TopItems,
		CSRFToken:  csrfToken(c),
	})
}

// Post handles POST /Home?handler=<name>. Logout is the only handler.
func (h *HomeHandler) Post(c echo.Context) error {
	switch strings.ToLower(c.QueryParam("handler")) {
	case "logout":
		return h.logout(c)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown handler")
	}
}

func (h *HomeHandler) logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context(), middleware.SessionID(c)); err != nil {
		return err
	}
	h.cookie.Expire(c)
	metrics.WebLogoutsTotal.Inc()

	return c.Redirect(http.StatusFound, PathLogin)
}

// Root handles GET /.
func Root(c echo.Context) error {
	return c.Redirect(http.StatusFound, PathLogin)
}
