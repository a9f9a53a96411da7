package logger

import "log/slog"

// Level names accepted in LOG_LEVEL
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

var levelsByName = map[string]slog.Level{
	LogLevelDebug:   slog.LevelDebug,
	LogLevelInfo:    slog.LevelInfo,
	LogLevelWarn:    slog.LevelWarn,
	LogLevelWarning: slog.LevelWarn,
	LogLevelError:   slog.LevelError,
}

// Output formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Deployment environments
const (
	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "prod"
	EnvironmentTest       = "test"
)

const (
	DefaultServiceName = "multiplier-shop"
	DefaultVersion     = "dev"
)

// Attribute keys every record may carry
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)

const (
	ErrFmtUnknownLevel       = "unknown log level %q"
	ErrFmtUnknownFormat      = "unknown log format %q"
	ErrFmtUnknownEnvironment = "unknown environment %q"
)
