package config

import (
	"context"
	"fmt"

	"github.com/mr-romero/slidegrid/pkg/layout"
	"github.com/mr-romero/slidegrid/pkg/present"
	"github.com/mr-romero/slidegrid/pkg/store"
)

// OpenStore opens the slide storage backend selected by cfg.
func OpenStore(ctx context.Context, cfg Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case BackendMemory:
		return store.NewMemoryStore(), nil
	case BackendFile:
		return store.NewFileStore(cfg.Store.Dir)
	case BackendMongo:
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:      cfg.Store.MongoURI,
			Database: cfg.Store.MongoDatabase,
		})
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// OpenSessionStore opens the presentation session backend. Redis when
// an address is configured, in-memory otherwise.
func OpenSessionStore(ctx context.Context, cfg Config) (present.Store, error) {
	if cfg.Present.RedisAddr == "" {
		return present.NewMemoryStore(), nil
	}
	return present.NewRedisStore(ctx, present.RedisConfig{
		Addr:     cfg.Present.RedisAddr,
		Password: cfg.Present.RedisPassword,
		DB:       cfg.Present.RedisDB,
	})
}

// Policy returns the configured default conflict policy.
func (c Config) Policy() layout.ConflictPolicy {
	if c.Grid.ConflictPolicy == "reject" {
		return layout.Reject
	}
	return layout.Overwrite
}
