package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/bidorbuy/ewa/internal/core/domain"
	"github.com/bidorbuy/ewa/internal/core/ports"
	"github.com/bidorbuy/ewa/internal/core/service"
	"github.com/bidorbuy/ewa/internal/infrastructure/db/memory"
	mongodb "github.com/bidorbuy/ewa/internal/infrastructure/db/mongo"
	redisdb "github.com/bidorbuy/ewa/internal/infrastructure/db/redis"
	"github.com/bidorbuy/ewa/internal/infrastructure/http/handlers"
	"github.com/bidorbuy/ewa/internal/infrastructure/identity"
	"github.com/bidorbuy/ewa/internal/pkg/config"
	"github.com/bidorbuy/ewa/internal/web"
	"github.com/bidorbuy/ewa/internal/web/middleware"
	"github.com/bidorbuy/ewa/pkg/logger"
)

const (
	shutdownTimeout = 5 * time.Second
	sweepInterval   = time.Minute
)

// sessionBackend is a store that can also report its own health.
type sessionBackend interface {
	ports.SessionStore
	handlers.Pinger
}

func main() {
	cfg := config.LoadWeb()

	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "web",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openSessionStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Session.Backend).Msg("failed to open session store")
	}
	defer closeStore()

	idp := identity.NewClient(identity.Config{
		BaseURL: cfg.IdentityAPI.BaseURL,
		Timeout: cfg.IdentityAPI.Timeout,
	})

	e, err := web.NewRouter(web.Options{
		Sessions: service.NewSessionService(idp, store, log),
		Cookie:   middleware.NewSessionCookie(cfg.Session.CookieName, cfg.Session.CookieSecure),
		Catalog:  domain.DemoCatalog(),
		Dependencies: map[string]handlers.Pinger{
			"sessions":     store,
			"identity_api": idp,
		},
		Log: log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}
	e.HideBanner = true
	e.HidePort = true

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("identity_api", cfg.IdentityAPI.BaseURL).
			Str("session_backend", cfg.Session.Backend).
			Msg("web frontend listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
	}
}

// openSessionStore connects the configured backend. The returned func
// releases its resources.
func openSessionStore(ctx context.Context, cfg *config.Web, log zerolog.Logger) (sessionBackend, func(), error) {
	idle := cfg.Session.IdleTimeout

	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				log.Warn().Err(err).Msg("close redis")
			}
		}
		return redisdb.NewSessionStore(client, idle), closeFn, nil

	case config.SessionBackendMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  "bidorbuy-web",
		})
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := client.Disconnect(dctx); err != nil {
				log.Warn().Err(err).Msg("disconnect mongo")
			}
		}
		store := mongodb.NewSessionStore(db, idle)
		if err := store.EnsureIndexes(ctx); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("ensure session indexes: %w", err)
		}
		return store, closeFn, nil

	default:
		store := memory.NewSessionStore(idle)
		go store.RunSweeper(ctx, sweepInterval)
		return store, func() {}, nil
	}
}
