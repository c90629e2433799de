package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds process settings, populated from environment variables.
// None of them change what the weather tools return.
type Config struct {
	LogLevel        slog.Level
	LogFormat       string
	MetricsAddr     string // empty disables the health/metrics listener
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	level, err := parseLogLevel(sharedcfg.EnvOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(strings.TrimSpace(sharedcfg.EnvOrDefault("LOG_FORMAT", "json")))
	switch format {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q (allowed: json, text)", format)
	}

	return &Config{
		LogLevel:        level,
		LogFormat:       format,
		MetricsAddr:     strings.TrimSpace(os.Getenv("METRICS_ADDR")),
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
