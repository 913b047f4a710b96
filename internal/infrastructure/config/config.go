package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is loaded exactly once at process start and passed explicitly to
// every component. In particular the JWT settings are never re-read from the
// environment, so a login and a later /auth/me call within the same process
// lifetime always use the same signing secret.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT       JWTConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	Translate TranslateConfig
	Login     LoginConfig
}

type JWTConfig struct {
	Secret   string        `env:"JWT_SECRET, required"`
	Issuer   string        `env:"JWT_ISSUER,   default=storyweave-api"`
	Audience string        `env:"JWT_AUDIENCE, default=storyweave-app"`
	TTL      time.Duration `env:"JWT_TTL,      default=168h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storyweave"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type TranslateConfig struct {
	BaseURL string        `env:"TRANSLATE_URL, default=http://localhost:5000"`
	APIKey  string        `env:"TRANSLATE_API_KEY"`
	Timeout time.Duration `env:"TRANSLATE_TIMEOUT, default=15s"`
}

type LoginConfig struct {
	MaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS, default=10"`
	Window      time.Duration `env:"LOGIN_WINDOW,       default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// IsProduction reports whether the process runs with production settings;
// it controls console vs JSON log output and error verbosity.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
