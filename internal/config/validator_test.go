package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_MissingVersion(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvAPIKey, "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), EnvAPIKey)
}

func TestValidateEnv_AllSet(t *testing.T) {
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvAPIKey, "secret")

	assert.NoError(t, ValidateEnv())
}

// clearLogEnv makes the logging settings fall back to their defaults.
func clearLogEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvLogLevel, EnvLogFormat, EnvEnvironment} {
		t.Setenv(key, "")
	}
}

func TestValidateEnvWithWarnings_InsecureDefaults(t *testing.T) {
	clearLogEnv(t)
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvAPIKey, ExampleAPIKey)
	t.Setenv(EnvItemsConfigPath, filepath.Join(t.TempDir(), "missing.toml"))

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "API_KEY appears to be using the example value")
	assert.Contains(t, warnings[1], "ITEMS_CONFIG_PATH")
}

func TestValidateEnvWithWarnings_Clean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o600))

	clearLogEnv(t)
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvAPIKey, "a-real-key")
	t.Setenv(EnvItemsConfigPath, path)

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidateEnvWithWarnings_LoggingSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o600))

	clearLogEnv(t)
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvAPIKey, "a-real-key")
	t.Setenv(EnvItemsConfigPath, path)
	t.Setenv(EnvLogLevel, "chatty")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "chatty")
}
