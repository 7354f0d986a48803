package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultHTTPAddr = ":8080"
	defaultCacheTTL = time.Minute
)

type Config struct {
	HTTPAddr    string
	PostgresURL string
	RedisAddr   string
	CacheTTL    time.Duration
	LogLevel    logrus.Level
}

// Load reads the configuration from the environment. Variables in a .env
// file in the working directory are loaded first, without overriding the
// ones already set.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Config{
		HTTPAddr:    getEnvOrDefault("HTTP_ADDR", defaultHTTPAddr),
		PostgresURL: os.Getenv("POSTGRES_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		CacheTTL:    defaultCacheTTL,
		LogLevel:    logrus.InfoLevel,
	}

	if cfg.PostgresURL == "" {
		return Config{}, errors.New("POSTGRES_URL is required")
	}
	if cfg.RedisAddr == "" {
		return Config{}, errors.New("REDIS_ADDR is required")
	}

	if v := os.Getenv("CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parsing CACHE_TTL: %w", err)
		}
		cfg.CacheTTL = ttl
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("parsing LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

func getEnvOrDefault(key string, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
