// Command migrate applies the document-store schema to the configured
// PostgreSQL database and exits. The server applies the same migrations on
// start; this command exists for deploys that run schema changes separately.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/safewalk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/safewalk-backend/internal/app"
	"github.com/heartmarshall/safewalk-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Storage.Driver != config.StorageDriverPostgres {
		logger.Info("nothing to migrate", slog.String("driver", cfg.Storage.Driver))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, logger); err != nil {
		logger.Error("migrate failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("migrations applied")
}
