// Package factory selects the storage backend from configuration.
package factory

import (
	"context"
	"fmt"

	"github.com/agentdir/directory/internal/config"
	"github.com/agentdir/directory/internal/store"
	"github.com/agentdir/directory/internal/store/memory"
	"github.com/agentdir/directory/internal/store/postgres"
	"github.com/agentdir/directory/internal/store/sqlite"
)

// NewStore builds the store.Store selected by cfg.StoreDriver. SQL drivers
// apply their schema on open so a fresh database is immediately usable.
func NewStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		return memory.New(), nil
	case "sqlite":
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return sqlite.NewWithDB(db), nil
	case "postgres":
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			return nil, err
		}
		return postgres.NewWithDB(db), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER: %s", cfg.StoreDriver)
	}
}
