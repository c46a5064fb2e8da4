package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// AdminPassword seeds the first admin account when the user directory is
	// empty. Ignored once any account exists.
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// SessionSweepInterval is how often expired sessions are evicted. The
	// sweep is hygiene only; expiry is enforced on every validation.
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL, default=5m"`

	// LogWorkers is the number of sharded workers draining the log-sync queue.
	LogWorkers int `env:"LOG_WORKERS, default=8"`

	Mongo MongoConfig
	Redis RedisConfig
	AI    AIConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=maintenance_system"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type AIConfig struct {
	// APIKey selects the provider: keys with the "sk-" prefix route to
	// OpenAI, anything else to Perplexity.
	APIKey  string        `env:"AI_API_KEY"`
	Timeout time.Duration `env:"AI_TIMEOUT, default=60s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
