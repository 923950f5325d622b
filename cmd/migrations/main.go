package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"

	"github.com/vncsmyrnk/votebox/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/votebox/internal/config"
	"github.com/vncsmyrnk/votebox/internal/logger"
)

func main() {
	cfg, err := config.LoadJob()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var (
		dsn     string
		command string
		steps   int
		force   int
	)
	flag.StringVar(&dsn, "dsn", cfg.Postgres.ConnString(), "Database connection string")
	flag.StringVar(&command, "command", "up", "One of: up, down, steps, version, force")
	flag.IntVar(&steps, "n", 1, "Number of steps for the steps command, negative to roll back")
	flag.IntVar(&force, "force-version", -1, "Version to set with the force command")
	flag.Parse()

	log := logger.New(cfg.Env).With(slog.String("command", command))

	db, err := postgres.Open(dsn)
	if err != nil {
		log.Error("failed to connect", slog.Any("error", err))
		os.Exit(1)
	}

	// Closing the migrator closes db too.
	m, err := postgres.NewMigrator(db)
	if err != nil {
		log.Error("failed to create migrator", slog.Any("error", err))
		os.Exit(1)
	}
	defer m.Close()

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "steps":
		err = m.Steps(steps)
	case "force":
		err = m.Force(force)
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			err = verr
			break
		}
		log.Info("current version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	default:
		log.Error("unknown command")
		os.Exit(2)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Error("migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("migration finished")
}
