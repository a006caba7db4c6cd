package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Env               string        `validate:"required,oneof=development test production"`
	ListenAddr        string        `validate:"required"`
	DatabaseURL       string        `validate:"required_unless=Env development"`
	DBMaxConns        int           `validate:"gte=1,lte=256"`
	DBMinConns        int           `validate:"gte=0,ltefield=DBMaxConns"`
	DBMaxConnLifetime time.Duration `validate:"gte=0"`
	ScoringWorkers    int           `validate:"gte=0,lte=64"`
	PollInterval      time.Duration `validate:"gte=10ms"`
	LogLevel          string        `validate:"oneof=debug info warn error"`
	LogFormat         string        `validate:"oneof=text json"`
	DefaultLanguage   string        `validate:"required"`
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; variables already set win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds and validates a Config from the current environment only.
func FromEnv() (Config, error) {
	workers, err := getenvInt("SCORING_WORKERS", 2)
	if err != nil {
		return Config{}, err
	}
	poll, err := getenvDuration("POLL_INTERVAL", 500*time.Millisecond)
	if err != nil {
		return Config{}, err
	}
	maxConns, err := getenvInt("DB_MAX_CONNS", 10)
	if err != nil {
		return Config{}, err
	}
	minConns, err := getenvInt("DB_MIN_CONNS", 0)
	if err != nil {
		return Config{}, err
	}
	lifetime, err := getenvDuration("DB_MAX_CONN_LIFETIME", time.Hour)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Env:               getenv("APP_ENV", "development"),
		ListenAddr:        getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DBMaxConns:        maxConns,
		DBMinConns:        minConns,
		DBMaxConnLifetime: lifetime,
		ScoringWorkers:    workers,
		PollInterval:      poll,
		LogLevel:          getenv("LOG_LEVEL", "info"),
		LogFormat:         getenv("LOG_FORMAT", "text"),
		DefaultLanguage:   DefaultLanguage(),
	}
	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DefaultLanguage is DEFAULT_LANGUAGE, or "en" when unset.
func DefaultLanguage() string { return getenv("DEFAULT_LANGUAGE", "en") }

// UsesDatabase reports whether the Postgres adapters should be wired.
func (c Config) UsesDatabase() bool { return c.DatabaseURL != "" }

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	out, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return out, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	out, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return out, nil
}
