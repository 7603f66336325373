// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Storage StorageConfig
	Account AccountConfig
	Logger  LoggerConfig
}

// StorageConfig holds data file configuration
type StorageConfig struct {
	// DataFile is the JSON document holding clients and accounts.
	DataFile string
}

// AccountConfig holds the policy defaults applied to new accounts
type AccountConfig struct {
	Branch           string
	OverdraftLimit   float64
	DailyWithdrawals int
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

// Load loads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{
		Storage: StorageConfig{
			DataFile: getEnv("BANK_DATA_FILE", "banco_data.json"),
		},
		Account: AccountConfig{
			Branch:           getEnv("BANK_BRANCH", "0001"),
			OverdraftLimit:   getEnvAsFloat("BANK_OVERDRAFT_LIMIT", 500.0),
			DailyWithdrawals: getEnvAsInt("BANK_DAILY_WITHDRAWALS", 3),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Storage.DataFile == "" {
		return fmt.Errorf("data file path cannot be empty")
	}

	if c.Account.Branch == "" {
		return fmt.Errorf("branch code cannot be empty")
	}
	if c.Account.OverdraftLimit < 0 {
		return fmt.Errorf("overdraft limit cannot be negative, got %f", c.Account.OverdraftLimit)
	}
	if c.Account.DailyWithdrawals < 1 {
		return fmt.Errorf("daily withdrawals must be at least 1, got %d", c.Account.DailyWithdrawals)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Logger.Format] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.Logger.Format)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
