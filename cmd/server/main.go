package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"citizen-services/internal/config"
	"citizen-services/internal/handler"
	"citizen-services/internal/i18n"
	"citizen-services/internal/logger"
	"citizen-services/internal/metrics"
	"citizen-services/internal/middleware"
	"citizen-services/internal/service"
	"citizen-services/internal/validator"
	"citizen-services/internal/webhook"

	"golang.org/x/sync/errgroup"
)

//go:embed dist/*
var staticFS embed.FS

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	if err := run(cfg); err != nil {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if err := validator.Register(); err != nil {
		return err
	}
	tr := i18n.Default(cfg.I18n.DefaultLocale)

	authSvc, err := service.NewAuthService(cfg.Auth.Users)
	if err != nil {
		return err
	}
	sessions := service.NewSessionRegistry(service.SessionOptions{
		TypingDelay: cfg.TypingDelay(),
		TTL:         cfg.SessionTTL(),
	})

	// a nil Poster sends every registration down the failure path
	var poster service.Poster
	if cfg.Webhook.URL != "" {
		hook := webhook.New(cfg.Webhook.URL, cfg.WebhookTimeout())
		defer hook.CloseIdle()
		poster = hook
	} else {
		slog.Warn("webhook url not configured, registrations will fail")
	}

	distFS, err := fs.Sub(staticFS, "dist")
	if err != nil {
		return err
	}
	router, err := handler.NewRouter(handler.Deps{
		Config:       cfg,
		Translations: tr,
		Auth:         authSvc,
		Tokens:       middleware.NewTokens(cfg.Auth.JWTSecret, cfg.TokenTTL()),
		Sessions:     sessions,
		Registration: service.NewRegistrationService(poster, tr, nil),
		Metrics:      metrics.New(sessions.Len),
		Static:       distFS,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("server starting", "addr", srv.Addr, "locale", tr.Fallback())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return sessions.Run(ctx, cfg.SweepInterval())
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
