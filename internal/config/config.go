// Package config binds the process environment to a typed configuration.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Store backends.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	Addr               string   `envconfig:"APP_ADDR" default:":8080"`
	Environment        string   `envconfig:"APP_ENV" default:"development"`
	MaxBodyBytes       int64    `envconfig:"HTTP_MAX_BODY_BYTES" default:"1048576"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`

	Store StoreConfig
}

type StoreConfig struct {
	// Backend selects where the catalog slot lives: a local JSON file
	// (default), a Redis key, or process memory.
	Backend  string `envconfig:"STORE_BACKEND" default:"file"`
	FilePath string `envconfig:"STORE_FILE_PATH" default:"bookbarter-books.json"`
	RedisURL string `envconfig:"STORE_REDIS_URL" default:"redis://localhost:6379/0"`
	RedisKey string `envconfig:"STORE_REDIS_KEY" default:"bookbarter-books"`
}

// Load reads .env.local if present, then processes the environment.
func Load() (Config, error) {
	_ = godotenv.Load(".env.local")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}

	switch cfg.Store.Backend {
	case BackendFile, BackendRedis, BackendMemory:
	default:
		return Config{}, fmt.Errorf("unknown STORE_BACKEND %q", cfg.Store.Backend)
	}
	return cfg, nil
}

// IsProduction reports whether the service runs in production mode.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
