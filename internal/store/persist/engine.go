// Package persist provides the durable storage engines behind the state
// store. An engine holds exactly one value: the serialized root snapshot.
package persist

import (
	"context"
	"fmt"

	"github.com/supportdesk/deskclient/internal/pkg/config"
)

// Engine is the durable local storage the store rehydrates from at startup
// and writes back to on every change.
type Engine interface {
	// Load returns the previously saved snapshot, or (nil, nil) when the
	// engine holds no state yet.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the stored snapshot.
	Save(ctx context.Context, snapshot []byte) error
	Close() error
}

// Open builds the engine selected by cfg.Engine.
func Open(ctx context.Context, cfg config.PersistConfig) (Engine, error) {
	switch cfg.Engine {
	case "badger", "":
		return OpenBadger(cfg.Path)
	case "redis":
		return OpenRedis(ctx, RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
			Key:  cfg.Redis.Key,
		})
	case "memory":
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("persist: unknown engine %q", cfg.Engine)
}
