package app

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config is constructed once at process start and injected into every
// component; nothing reads configuration from globals after startup.
type Config struct {
	AuthorizerURL     string        // Required: base URL of the external auth server
	AuthorizerTimeout time.Duration // Optional: per-check timeout (default: 5s)

	ProviderURL   string // Required: base URL of the email provider API
	ProviderToken string // Required: provider access token

	DatabaseFile string // Optional: path to SQLite database file (default: ./mailservice.db)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8005)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// Validate reports missing required settings before anything starts.
func (c Config) Validate() error {
	if c.AuthorizerURL == "" {
		return errors.New("config: MAIL_AUTHORIZER_URL is required")
	}
	if c.ProviderURL == "" {
		return errors.New("config: MAIL_PROVIDER_URL is required")
	}
	if c.ProviderToken == "" {
		return errors.New("config: MAIL_PROVIDER_TOKEN is required")
	}
	return nil
}

func LoadConfig() Config {
	return Config{
		AuthorizerURL:     os.Getenv("MAIL_AUTHORIZER_URL"),
		AuthorizerTimeout: getEnvDurationOrDefault("MAIL_AUTHORIZER_TIMEOUT", 5*time.Second),
		ProviderURL:       os.Getenv("MAIL_PROVIDER_URL"),
		ProviderToken:     os.Getenv("MAIL_PROVIDER_TOKEN"),
		DatabaseFile:      getEnvOrDefault("MAIL_DATABASE_FILE", "mailservice.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8005),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
