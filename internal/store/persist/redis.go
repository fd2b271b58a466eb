package persist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// RedisConfig captures the settings for the Redis engine.
type RedisConfig struct {
	Addr    string
	DB      int
	Key     string
	Timeout time.Duration
}

// Redis stores the snapshot under a single key in a Redis server. It is the
// engine to pick when state should follow the viewer across machines.
type Redis struct {
	client *redis.Client
	key    string
}

// OpenRedis initialises a Redis client and validates connectivity with a
// ping. A default timeout is applied when none is provided.
func OpenRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("persist: redis ping: %w", err)
	}

	key := cfg.Key
	if key == "" {
		key = "deskclient:state"
	}
	return &Redis{client: client, key: key}, nil
}

// Load implements Engine.
func (r *Redis) Load(ctx context.Context) ([]byte, error) {
	b, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("persist: load snapshot: %w", err)
	}
	return b, nil
}

// Save implements Engine.
func (r *Redis) Save(ctx context.Context, snapshot []byte) error {
	if err := r.client.Set(ctx, r.key, snapshot, 0).Err(); err != nil {
		return fmt.Errorf("persist: save snapshot: %w", err)
	}
	return nil
}

// Close releases the client.
func (r *Redis) Close() error {
	return r.client.Close()
}
