package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars unsets every variable Load reads for the duration of the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvPort, EnvAPIKey, EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvServiceName, EnvVersion,
		EnvItemsConfigPath, EnvPricingSearchCeiling, EnvPricingMaxIterations,
		EnvQuoteCacheSize, EnvQuoteCacheTTL, EnvTrustedProxies, EnvLogDir,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		// Must set API_KEY or it fails validation
		t.Setenv(EnvAPIKey, "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "multiplier-shop", cfg.ServiceName)
		assert.Equal(t, "test-key", cfg.APIKey)
		assert.Equal(t, ConfigPathItems, cfg.ItemsConfigPath)
		assert.Equal(t, 1_000_000, cfg.PricingSearchCeiling)
		assert.Equal(t, 256, cfg.PricingMaxIterations)
		assert.Equal(t, 1024, cfg.QuoteCacheSize)
		assert.Equal(t, 10*time.Minute, cfg.QuoteCacheTTL)
		assert.Empty(t, cfg.TrustedProxies)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv(EnvPort, "3000")
		t.Setenv(EnvAPIKey, "custom-api-key")
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "prod")
		t.Setenv(EnvItemsConfigPath, "/etc/shop/items.toml")
		t.Setenv(EnvPricingSearchCeiling, "5000")
		t.Setenv(EnvPricingMaxIterations, "64")
		t.Setenv(EnvQuoteCacheSize, "10")
		t.Setenv(EnvQuoteCacheTTL, "30s")
		t.Setenv(EnvTrustedProxies, "10.0.0.1, ,192.168.1.0/24")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "/etc/shop/items.toml", cfg.ItemsConfigPath)
		assert.Equal(t, 5000, cfg.PricingSearchCeiling)
		assert.Equal(t, 64, cfg.PricingMaxIterations)
		assert.Equal(t, 10, cfg.QuoteCacheSize)
		assert.Equal(t, 30*time.Second, cfg.QuoteCacheTTL)
		assert.Equal(t, []string{"10.0.0.1", "192.168.1.0/24"}, cfg.TrustedProxies)
	})

	t.Run("fails without API key", func(t *testing.T) {
		clearEnvVars(t)

		_, err := Load()
		assert.True(t, errors.Is(err, ErrMissingAPIKey))
	})

	t.Run("fails on invalid port", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvAPIKey, "k")
		t.Setenv(EnvPort, "eighty")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid PORT value")
	})

	t.Run("fails on out-of-range search bounds", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvAPIKey, "k")
		t.Setenv(EnvPricingSearchCeiling, "0")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvPricingSearchCeiling)

		t.Setenv(EnvPricingSearchCeiling, "1000001")
		_, err = Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvPricingSearchCeiling)

		t.Setenv(EnvPricingSearchCeiling, "10")
		t.Setenv(EnvPricingMaxIterations, "-1")
		_, err = Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvPricingMaxIterations)
	})
}
