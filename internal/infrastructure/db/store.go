// Package db selects and opens the configured record store.
package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mmemodas/storefront/internal/core/ports"
	"github.com/mmemodas/storefront/internal/infrastructure/db/memory"
	"github.com/mmemodas/storefront/internal/infrastructure/db/mongo"
	"github.com/mmemodas/storefront/internal/infrastructure/db/postgres"
	"github.com/mmemodas/storefront/internal/pkg/config"
)

// Open returns the store named by cfg.Backend. The memory backend comes
// preloaded with the sample catalog; durable backends start as they are.
func Open(ctx context.Context, cfg config.StoreConfig, log zerolog.Logger) (ports.Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		log.Info().Msg("using in-memory store")
		return memory.NewSeeded(), nil

	case config.BackendPostgres:
		gdb, err := postgres.ConnectWithRetry(cfg.DatabaseURL, cfg.ConnectTimeout, postgres.Open, log)
		if err != nil {
			return nil, err
		}
		s := postgres.NewStore(gdb)
		if err := s.Migrate(ctx); err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		log.Info().Msg("connected to postgres")
		return s, nil

	case config.BackendMongo:
		s, err := mongo.Open(ctx, mongo.Config{URI: cfg.MongoURI, Database: cfg.MongoDB})
		if err != nil {
			return nil, err
		}
		log.Info().Str("database", cfg.MongoDB).Msg("connected to mongodb")
		return s, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}
