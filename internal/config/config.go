package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Storage types for the round journal
const (
	StorageMemory        = "memory"
	StorageSQLite        = "sqlite"
	StorageElasticsearch = "elasticsearch"
)

// Config holds all configuration for the application
type Config struct {
	// Round journal
	StorageType  string `validate:"required,oneof=memory sqlite elasticsearch"`
	DataDir      string `validate:"required"`
	HistoryLimit int    `validate:"gte=1,lte=1000"`

	// Elasticsearch configuration, only used with the elasticsearch journal
	ElasticsearchURL      string `validate:"required_if=StorageType elasticsearch"`
	ElasticsearchUsername string
	ElasticsearchPassword string
	ElasticsearchIndex    string `validate:"required"`

	// Gameplay
	ShuffleSeed *int64

	LogLevel string `validate:"required,oneof=debug info warn error"`
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds the configuration from the process environment only
func FromEnv() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	historyLimit, err := strconv.Atoi(getEnvWithDefault("HISTORY_LIMIT", "10"))
	if err != nil {
		return nil, types.WrapError(types.ErrInvalidConfig, "HISTORY_LIMIT must be a number", err)
	}

	cfg := &Config{
		StorageType:           getEnvWithDefault("STORAGE_TYPE", StorageMemory),
		DataDir:               getEnvWithDefault("DATA_DIR", filepath.Join(wd, "data")),
		HistoryLimit:          historyLimit,
		ElasticsearchURL:      os.Getenv("ELASTICSEARCH_URL"),
		ElasticsearchUsername: os.Getenv("ELASTICSEARCH_USERNAME"),
		ElasticsearchPassword: os.Getenv("ELASTICSEARCH_PASSWORD"),
		ElasticsearchIndex:    getEnvWithDefault("ELASTICSEARCH_INDEX", "blackjack_rounds"),
		LogLevel:              getEnvWithDefault("LOG_LEVEL", "info"),
	}

	if raw := os.Getenv("SHUFFLE_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, types.WrapError(types.ErrInvalidConfig, "SHUFFLE_SEED must be an integer", err)
		}
		cfg.ShuffleSeed = &seed
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.StorageType == StorageSQLite {
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return cfg, nil
}

// validate checks if all required configuration is present
func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return types.WrapError(types.ErrInvalidConfig, "invalid configuration", err)
	}
	return nil
}

// SQLitePath returns the location of the round journal database
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "blackjack.db")
}

// Level returns the configured log level
func (c *Config) Level() logging.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.INFO
	}
	return level
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
