package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/vncsmyrnk/votebox/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/votebox/internal/config"
	"github.com/vncsmyrnk/votebox/internal/core/services"
	"github.com/vncsmyrnk/votebox/internal/logger"
)

func main() {
	cfg, err := config.LoadJob()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var (
		dbHost, dbPort, dbUser, dbPass, dbName string
		timeout                                time.Duration
	)
	flag.StringVar(&dbHost, "db-host", cfg.Postgres.Host, "Database host")
	flag.StringVar(&dbPort, "db-port", cfg.Postgres.Port, "Database port")
	flag.StringVar(&dbUser, "db-user", cfg.Postgres.User, "Database user")
	flag.StringVar(&dbPass, "db-pass", cfg.Postgres.Password, "Database password")
	flag.StringVar(&dbName, "db-name", cfg.Postgres.DB, "Database name")
	flag.DurationVar(&timeout, "timeout", 5*time.Minute, "Maximum job duration")
	flag.Parse()

	pg := cfg.Postgres
	pg.Host, pg.Port, pg.User, pg.Password, pg.DB = dbHost, dbPort, dbUser, dbPass, dbName

	log := logger.New(cfg.Env)

	db, err := postgres.Open(pg.ConnString())
	if err != nil {
		log.Error("failed to connect", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	pollRepo := postgres.NewPollRepository(db)
	expirationService := services.NewExpirationService(log, pollRepo)

	// Bound the whole job.
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Info("starting poll expiration job")

	n, err := expirationService.DeactivateExpired(ctx)
	if err != nil {
		log.Error("poll expiration failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("poll expiration completed", slog.Int("deactivated", n))
}
