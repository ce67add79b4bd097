// Package bootstrap wires the process-wide store and Redis connections.
package bootstrap

import (
	"context"
	"fmt"

	"gamereviews/internal/cache"
	"gamereviews/internal/config"
	"gamereviews/internal/database"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// ApplySchema creates missing tables after connecting.
	ApplySchema bool
}

// InitRuntime connects to the store and, when configured, Redis. A nil
// Redis client means rate limiting runs fail-open.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	if opts.ApplySchema {
		if err := database.ApplySchema(ctx, db); err != nil {
			Close(db, nil)
			return nil, nil, fmt.Errorf("apply schema: %w", err)
		}
	}

	return db, cache.NewClient(ctx, cfg.RedisURL), nil
}

// Close releases the connections opened by InitRuntime.
func Close(db *gorm.DB, rdb *redis.Client) {
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
