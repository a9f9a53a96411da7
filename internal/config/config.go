package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned by Load when API_KEY is unset.
var ErrMissingAPIKey = errors.New("API_KEY environment variable must be set for security")

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string // API key for authentication
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
	LogDir      string // Optional; logs are also written to session files here

	// Item catalog
	ItemsConfigPath string

	// Pricing search bounds
	PricingSearchCeiling int
	PricingMaxIterations int

	// Max-affordable result cache
	QuoteCacheSize int
	QuoteCacheTTL  time.Duration

	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:               getEnv(EnvAPIKey, ""),
		LogLevel:             getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:            getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:          getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:          getEnv(EnvServiceName, DefaultServiceName),
		Version:              getEnv(EnvVersion, DefaultVersion),
		LogDir:               getEnv(EnvLogDir, ""),
		ItemsConfigPath:      getEnv(EnvItemsConfigPath, ConfigPathItems),
		PricingSearchCeiling: getEnvAsInt(EnvPricingSearchCeiling, DefaultPricingSearchCeiling),
		PricingMaxIterations: getEnvAsInt(EnvPricingMaxIterations, DefaultPricingMaxIterations),
		QuoteCacheSize:       getEnvAsInt(EnvQuoteCacheSize, DefaultQuoteCacheSize),
		QuoteCacheTTL:        getEnvAsDuration(EnvQuoteCacheTTL, DefaultQuoteCacheTTL),
		TrustedProxies:       getEnvAsList(EnvTrustedProxies),
	}

	portStr := getEnv(EnvPort, strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.PricingSearchCeiling <= 0 || cfg.PricingSearchCeiling > MaxPricingSearchCeiling {
		return nil, fmt.Errorf("%s must be between 1 and %d, got %d", EnvPricingSearchCeiling, MaxPricingSearchCeiling, cfg.PricingSearchCeiling)
	}
	if cfg.PricingMaxIterations <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", EnvPricingMaxIterations, cfg.PricingMaxIterations)
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return cfg, nil
}

// getEnv retrieves an environment variable, treating empty as unset
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to defaultValue when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return i
}

// getEnvAsDuration parses a time.Duration variable ("10m", "1h30m"), falling back to defaultValue when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return d
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
