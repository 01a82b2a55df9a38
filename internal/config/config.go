package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/piwi3910/toolbox/pkg/logger"
)

// Config represents the configuration of the HTTP API server.
type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Session SessionConfig
	Log     LogConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// RedisConfig selects the project store. An empty Addr keeps projects in memory.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// SessionConfig controls how long stored projects live in Redis.
type SessionConfig struct {
	TTL time.Duration
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// A missing .env is fine when the environment is set directly.
		_ = godotenv.Load()
	}

	db, err := strconv.Atoi(getenvWithDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("REDIS_DB must be an integer: %w", err)
	}
	ttl, err := time.ParseDuration(getenvWithDefault("SESSION_TTL", "720h"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_TTL must be a duration: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       db,
			Prefix:   getenvWithDefault("REDIS_PREFIX", "toolbox:project"),
		},
		Session: SessionConfig{
			TTL: ttl,
		},
		Log: LogConfig{
			Level: getenvWithDefault("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}
	if c.Redis.DB < 0 {
		return errors.New("REDIS_DB must not be negative")
	}
	if c.Session.TTL < 0 {
		return errors.New("SESSION_TTL must not be negative")
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// UseRedis reports whether projects should be stored in Redis.
func (c *Config) UseRedis() bool {
	return c.Redis.Addr != ""
}

func getenvWithDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
