package main

import (
	"context"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/vncsmyrnk/votebox/internal/adapters/handler/http"
	"github.com/vncsmyrnk/votebox/internal/adapters/oauth/google"
	"github.com/vncsmyrnk/votebox/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/votebox/internal/config"
	"github.com/vncsmyrnk/votebox/internal/core/services"
	"github.com/vncsmyrnk/votebox/internal/logger"
	"github.com/vncsmyrnk/votebox/internal/telemetry"
)

const serviceName = "votebox"

// @title        Votebox API
// @version      1.0
// @description  Create polls, vote on them and follow the results.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("failed to flush traces", slog.Any("error", err))
		}
	}()

	db, err := postgres.Open(cfg.Postgres.ConnString())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		return err
	}

	// Initialize Repositories
	pollRepo := postgres.NewPollRepository(db)
	resultRepo := postgres.NewPollResultRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	userRepo := postgres.NewUserRepository(db)
	authRepo := postgres.NewAuthRepository(db)

	// Initialize Services
	pollService := services.NewPollService(log, pollRepo, resultRepo)
	voteService := services.NewVoteService(log, pollRepo, voteRepo, cfg.Scope())
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(log, userRepo, authRepo, google.NewVerifier(), services.AuthConfig{
		JWTSecret:       cfg.Auth.JWTSecret,
		GoogleClientID:  cfg.Auth.GoogleClientID,
		AccessTokenTTL:  cfg.Auth.AccessTokenTTL,
		RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
	})

	// Initialize Handlers
	handler := http.NewHandler(log, authService, http.Handlers{
		Poll: http.NewPollHandler(log, pollService),
		Vote: http.NewVoteHandler(log, voteService),
		User: http.NewUserHandler(log, userService),
		Auth: http.NewAuthHandler(log, authService, cfg.Auth.RedirectURL, http.CookieConfig{
			Domain:     cfg.Cookie.Domain,
			SameSite:   cfg.Cookie.SameSiteMode(),
			Secure:     cfg.Cookie.Secure,
			AccessTTL:  cfg.Auth.AccessTokenTTL,
			RefreshTTL: cfg.Auth.RefreshTokenTTL,
		}),
	}, http.RouterConfig{AllowedOrigins: cfg.HTTP.AllowedOrigins})

	server := &stdhttp.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      otelhttp.NewHandler(handler, serviceName),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", slog.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
