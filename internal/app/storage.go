package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/safewalk-backend/internal/adapter/filestore"
	"github.com/heartmarshall/safewalk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/safewalk-backend/internal/adapter/postgres/document"
	"github.com/heartmarshall/safewalk-backend/internal/config"
	"github.com/heartmarshall/safewalk-backend/internal/store"
)

// openStorage builds the document backend selected by cfg.Storage.Driver.
// The returned close func is always non-nil.
func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Backend, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, func() {}, err
		}
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, func() {}, err
		}
		logger.Info("storage ready", slog.String("driver", cfg.Storage.Driver))
		return document.New(pool), pool.Close, nil

	case config.StorageDriverFile:
		fs, err := filestore.New(cfg.Storage.DataDir)
		if err != nil {
			return nil, func() {}, err
		}
		logger.Info("storage ready",
			slog.String("driver", cfg.Storage.Driver),
			slog.String("dir", fs.Dir()),
		)
		return fs, func() {}, nil

	default:
		return nil, func() {}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
