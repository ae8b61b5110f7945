// AngelaMos | 2026
// open.go

package kv

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/cskit/internal/config"
)

// Open builds the backend selected by cfg.Store.Backend.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), nil

	case config.BackendSQLite, config.BackendPostgres:
		driver := DriverSQLite
		if cfg.Store.Backend == config.BackendPostgres {
			driver = DriverPostgres
		}
		s, err := NewSQLStore(ctx, driver, cfg.Store)
		if err != nil {
			return nil, err
		}
		return s, nil

	case config.BackendRedis:
		s, err := NewRedisStore(ctx, cfg.Redis, cfg.Store.KeyPrefix)
		if err != nil {
			return nil, err
		}
		return s, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
