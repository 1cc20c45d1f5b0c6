package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bidorbuy/ewa/internal/api"
	"github.com/bidorbuy/ewa/internal/core/domain"
	"github.com/bidorbuy/ewa/internal/core/ports"
	"github.com/bidorbuy/ewa/internal/core/service"
	"github.com/bidorbuy/ewa/internal/infrastructure/db/memory"
	"github.com/bidorbuy/ewa/internal/pkg/config"
	"github.com/bidorbuy/ewa/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.LoadIdentity()

	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "identity-api",
	})

	repo, err := memory.NewCredentialRepository(domain.DemoAccounts, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed demo accounts")
	}

	var tokens ports.TokenIssuer = service.NewOpaqueTokenIssuer()
	if cfg.TokenSigningSecret != "" {
		tokens = service.NewJWTTokenIssuer(cfg.TokenSigningSecret, cfg.TokenTTL)
		log.Info().Dur("ttl", cfg.TokenTTL).Msg("issuing signed tokens")
	}

	e := api.NewRouter(api.Options{
		AuthService:  service.NewAuthService(repo, tokens, log),
		AllowOrigins: cfg.CORSAllowOrigins,
		Log:          log,
	})
	e.HideBanner = true
	e.HidePort = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.Port).Int("accounts", repo.Len()).Msg("identity api listening")
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
