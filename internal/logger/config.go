package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config selects the handler and the base attributes of the default logger
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

// ParseLevel maps a level name to its slog.Level, case-insensitively
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case LogLevelDebug:
		return slog.LevelDebug, nil
	case LogLevelInfo:
		return slog.LevelInfo, nil
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn, nil
	case LogLevelError:
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf(ErrMsgUnknownLevelFmt, level)
}

// ValidateFormat accepts "json" or "text"
func ValidateFormat(format string) error {
	switch strings.ToLower(format) {
	case LogFormatJSON, LogFormatText:
		return nil
	}
	return fmt.Errorf(ErrMsgUnknownFormatFmt, format)
}

// LogLevel returns the configured level, or info when it cannot be parsed
func (c Config) LogLevel() slog.Level {
	level, _ := ParseLevel(c.Level)
	return level
}

// IsJSON reports whether records are written as JSON
func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes returns the attributes added to every record
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
