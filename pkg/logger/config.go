package logger

import (
	"log/slog"
	"strings"
)

// Format names accepted by Config.Format.
const (
	FormatJSON   = "json"
	FormatText   = "text"
	FormatPretty = "pretty" // colored, human oriented output for terminals
)

// Config holds logger configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Level             string `env:"LOG_LEVEL" envDefault:"info" yaml:"level" toml:"level"`
	Format            string `env:"LOG_FORMAT" envDefault:"json" yaml:"format" toml:"format"`
	SentryDSN         string `env:"SENTRY_DSN" yaml:"sentry_dsn" toml:"sentry_dsn"`
	SentryEnvironment string `env:"SENTRY_ENVIRONMENT" envDefault:"production" yaml:"sentry_environment" toml:"sentry_environment"`
}

// ParseLevel maps a level name ("debug", "info", "warn", "error") to a
// slog.Level. Unknown names yield slog.LevelInfo.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo
	}
	return level
}
