package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/bidorbuy/ewa/internal/infrastructure/http/handlers"
)

// Options configures the shared base router.
type Options struct {
	// Service names the process in logs, metrics and the liveness payload.
	Service string
	Log     zerolog.Logger
	// Dependencies are pinged by GET /health/ready.
	Dependencies map[string]handlers.Pinger
}

// NewRouter builds the Echo instance both services start from: recovery,
// request ids, zerolog request logging, request metrics, health probes and
// the Prometheus scrape endpoint.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// --- Global middleware ---
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(Metrics(opts.Service))
	e.Use(RequestLogger(opts.Log))

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler(opts.Service)
	healthDepsHandler := handlers.NewHealthDependenciesHandler(opts.Dependencies)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
