package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// ServerURL is the base URL of the support-desk backend.
	ServerURL string `env:"DESK_SERVER_URL, default=http://localhost:4000"`
	// HTTPTimeout bounds each backend call. Zero means no timeout; an
	// unanswered call then stays in flight indefinitely.
	HTTPTimeout time.Duration `env:"DESK_HTTP_TIMEOUT, default=0"`
	Env         string        `env:"ENV,       default=development"`
	LogLevel    string        `env:"LOG_LEVEL, default=info"`

	Persist PersistConfig
}

// PersistConfig selects and configures the durable state engine.
type PersistConfig struct {
	// Engine is one of: badger, redis, memory.
	Engine string `env:"DESK_PERSIST_ENGINE, default=badger"`
	// Path is the local database directory used by the badger engine.
	Path string `env:"DESK_STATE_PATH, default=.deskclient/state"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
	// Key is the single root key holding the serialized state snapshot.
	Key string `env:"DESK_STATE_KEY, default=deskclient:state"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
