package web

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bidorbuy/ewa/internal/core/domain"
	"github.com/bidorbuy/ewa/internal/core/ports"
	infrahttp "github.com/bidorbuy/ewa/internal/infrastructure/http"
	"github.com/bidorbuy/ewa/internal/infrastructure/http/handlers"
	"github.com/bidorbuy/ewa/internal/pkg/validation"
	"github.com/bidorbuy/ewa/internal/web/handler"
	"github.com/bidorbuy/ewa/internal/web/middleware"
	"github.com/bidorbuy/ewa/internal/web/view"
)

// Options wires the web frontend router.
type Options struct {
	Sessions     ports.SessionService
	Cookie       *middleware.SessionCookie
	Catalog      domain.Catalog
	Dependencies map[string]handlers.Pinger
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) (*echo.Echo, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	cookie := opts.Cookie
	if cookie == nil {
		cookie = middleware.NewSessionCookie("", false)
	}

	e := infrahttp.NewRouter(infrahttp.Options{
		Service:      "web",
		Log:          opts.Log,
		Dependencies: opts.Dependencies,
	})
	e.Renderer = renderer
	e.Validator = validation.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	e.StaticFS("/static", view.Static())

	// --- Dependencies ---
	loginHandler := handler.NewLoginHandler(opts.Sessions, cookie, opts.Log)
	homeHandler := handler.NewHomeHandler(opts.Sessions, cookie, opts.Catalog, opts.Log)

	// --- Pages ---
	pages := e.Group("", middleware.LoadSessionID(cookie), middleware.CSRF(cookie.Secure))
	pages.GET("/", handler.Root)
	pages.GET(handler.PathLogin, loginHandler.Show)
	pages.POST(handler.PathLogin, loginHandler.Submit)
	pages.GET(handler.PathHome, homeHandler.Show, middleware.RequireSession(opts.Sessions, handler.PathLogin))
	pages.POST(handler.PathHome, homeHandler.Post)

	return e, nil
}
