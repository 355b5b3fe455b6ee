package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	API    APIConfig
	Push   PushConfig
	Logger LoggerConfig
}

// APIConfig holds remote API configuration.
type APIConfig struct {
	BaseURL string
	Timeout int // seconds
}

// PushConfig holds push-gateway configuration for notifications.
type PushConfig struct {
	Enabled    bool
	GatewayURL string
	ServerKey  string
	Timeout    int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", ""),
			Timeout: getEnvAsInt("API_TIMEOUT", 15),
		},
		Push: PushConfig{
			Enabled:    getEnvAsBool("PUSH_ENABLED", false),
			GatewayURL: getEnv("PUSH_GATEWAY_URL", "https://fcm.googleapis.com/fcm/send"),
			ServerKey:  getEnv("PUSH_SERVER_KEY", ""),
			Timeout:    getEnvAsInt("PUSH_TIMEOUT", 10),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}

	if _, err := url.ParseRequestURI(c.API.BaseURL); err != nil {
		return fmt.Errorf("invalid API base URL: %w", err)
	}

	if c.API.Timeout < 1 {
		return fmt.Errorf("API timeout must be at least 1 second")
	}

	if c.Push.Enabled {
		if c.Push.GatewayURL == "" {
			return fmt.Errorf("push gateway URL is required when push is enabled")
		}
		if c.Push.ServerKey == "" {
			return fmt.Errorf("push server key is required when push is enabled")
		}
		if c.Push.Timeout < 1 {
			return fmt.Errorf("push timeout must be at least 1 second")
		}
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// RequestTimeout returns the API timeout as a duration.
func (c *APIConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// RequestTimeout returns the push timeout as a duration.
func (c *PushConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
