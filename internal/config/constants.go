package config

import "time"

// Configuration file paths
const (
	ConfigPathItems = "configs/items/multipliers.toml"
)

// Environment variable names
const (
	EnvPort                 = "PORT"
	EnvAPIKey               = "API_KEY"
	EnvLogLevel             = "LOG_LEVEL"
	EnvLogFormat            = "LOG_FORMAT"
	EnvEnvironment          = "ENVIRONMENT"
	EnvServiceName          = "SERVICE_NAME"
	EnvVersion              = "VERSION"
	EnvItemsConfigPath      = "ITEMS_CONFIG_PATH"
	EnvPricingSearchCeiling = "PRICING_SEARCH_CEILING"
	EnvPricingMaxIterations = "PRICING_MAX_ITERATIONS"
	EnvQuoteCacheSize       = "QUOTE_CACHE_SIZE"
	EnvQuoteCacheTTL        = "QUOTE_CACHE_TTL"
	EnvTrustedProxies       = "TRUSTED_PROXIES"
	EnvSchemaVersion        = "ENV_SCHEMA_VERSION"
	EnvLogDir               = "LOG_DIR"
)

// Defaults
const (
	DefaultPort                 = 8080
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"
	DefaultEnvironment          = "dev"
	DefaultServiceName          = "multiplier-shop"
	DefaultVersion              = "dev"
	DefaultPricingSearchCeiling = 1_000_000
	MaxPricingSearchCeiling     = 1_000_000
	DefaultPricingMaxIterations = 256
	DefaultQuoteCacheSize       = 1024
	DefaultQuoteCacheTTL        = 10 * time.Minute
)

// Example values shipped in .env.example
const (
	ExampleAPIKey = "generate_with_openssl_rand_hex_32"
)
