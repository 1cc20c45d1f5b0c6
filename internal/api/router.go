package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/bidorbuy/ewa/internal/api/docs"
	"github.com/bidorbuy/ewa/internal/api/handler"
	"github.com/bidorbuy/ewa/internal/core/ports"
	infrahttp "github.com/bidorbuy/ewa/internal/infrastructure/http"
	"github.com/bidorbuy/ewa/internal/pkg/validation"
)

// Options wires the Identity API router.
type Options struct {
	AuthService  ports.IdentityService
	AllowOrigins []string
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := infrahttp.NewRouter(infrahttp.Options{
		Service: "identity",
		Log:     opts.Log,
	})
	e.Validator = validation.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	origins := opts.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowHeaders: []string{"*"},
	}))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(opts.AuthService)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)

	// --- Meta ---
	e.GET("/", handler.Root)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
