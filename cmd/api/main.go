package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/auth"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/config"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/handlers"
	httpserver "github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/http"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/logging"
	"github.com/tibas2004/Trabalho1-HugoAntunes32120-RicardoLaranjeira32121/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("load config")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if cfg.UsesDevSecret() {
		logging.Warn().Msg("JWT_SECRET not set, signing tokens with the development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL, logging.NewGormLogger(logging.GormLevel(cfg.LogLevel)))
	if err != nil {
		logging.Fatal().Err(err).Str("driver", cfg.DatabaseDriver).Msg("open database")
	}
	st := store.New(db)
	defer func() {
		if err := st.Close(); err != nil {
			logging.Error().Err(err).Msg("close database")
		}
	}()
	if cfg.AutoMigrate {
		if err := st.Migrate(ctx); err != nil {
			logging.Fatal().Err(err).Msg("migrate")
		}
	}

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	srv := httpserver.NewServer(handlers.Mount(st, tokens, cfg.RequireAuth))
	hs := srv.HTTPServer(cfg.Addr())

	errc := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", hs.Addr).Bool("require_auth", cfg.RequireAuth).Msg("listening")
		errc <- hs.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			logging.Error().Err(err).Msg("server stopped")
		}
		return
	case <-ctx.Done():
	}

	logging.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("shutdown")
	}
}
