package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Config describes how the process logs: level, output format and the
// attributes stamped on every record.
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig creates a config from explicit values
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// DefaultConfig is used by binaries that have no config file of their own.
func DefaultConfig() Config {
	return Config{
		Level:       LogLevelInfo,
		Format:      LogFormatText,
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: EnvironmentDev,
	}
}

// ProductionConfig logs JSON at info level.
func ProductionConfig() Config {
	c := DefaultConfig()
	c.Format = LogFormatJSON
	c.Environment = EnvironmentProduction
	return c
}

// DevelopmentConfig logs text at debug level with source locations.
func DevelopmentConfig() Config {
	c := DefaultConfig()
	c.Level = LogLevelDebug
	c.AddSource = true
	return c
}

// ParseLevel maps a level name, case-insensitively, to its slog level.
func ParseLevel(name string) (slog.Level, error) {
	level, ok := levelsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return slog.LevelInfo, fmt.Errorf(ErrFmtUnknownLevel, name)
	}
	return level, nil
}

// LogLevel returns the configured level, falling back to info for unknown names.
func (c Config) LogLevel() slog.Level {
	level, _ := ParseLevel(c.Level)
	return level
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// Validate reports every setting that would silently fall back to a default.
func (c Config) Validate() error {
	var errs []error
	if _, err := ParseLevel(c.Level); err != nil {
		errs = append(errs, err)
	}
	if !strings.EqualFold(c.Format, LogFormatJSON) && !strings.EqualFold(c.Format, LogFormatText) {
		errs = append(errs, fmt.Errorf(ErrFmtUnknownFormat, c.Format))
	}
	switch c.Environment {
	case EnvironmentDev, EnvironmentStaging, EnvironmentProduction, EnvironmentTest:
	default:
		errs = append(errs, fmt.Errorf(ErrFmtUnknownEnvironment, c.Environment))
	}
	return errors.Join(errs...)
}

// BaseAttributes returns the attributes added to every record
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
