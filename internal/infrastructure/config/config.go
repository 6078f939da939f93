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

	Session SessionConfig
	Pwned   PwnedConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE, default=darksignal_session"`
	TTL        time.Duration `env:"SESSION_TTL,    default=24h"`
}

type PwnedConfig struct {
	BaseURL string        `env:"PWNED_API_URL, default=https://api.pwnedpasswords.com"`
	Timeout time.Duration `env:"PWNED_TIMEOUT, default=10s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=darksignal"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
