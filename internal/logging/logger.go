package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Log levels as written in config.toml and TC_LOG_LEVEL.
const (
	LevelError = 1
	LevelWarn  = 2
	LevelInfo  = 3
	LevelDebug = 4

	DefaultLevel = LevelWarn
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	Output     io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      LevelFromInt(DefaultLevel),
		Format:     "console",
		TimeFormat: time.TimeOnly,
		Output:     os.Stderr,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	if cfg.Format != "json" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// LevelFromInt maps the 1..4 verbosity scale onto zerolog levels.
// Values below 1 only keep errors, values above 4 behave like 4.
func LevelFromInt(level int) zerolog.Level {
	switch {
	case level <= LevelError:
		return zerolog.ErrorLevel
	case level == LevelWarn:
		return zerolog.WarnLevel
	case level == LevelInfo:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

// ParseLevel accepts either the numeric scale ("1".."4") or a zerolog level
// name ("debug", "warn", ...). Unparseable input yields the default level.
func ParseLevel(s string) zerolog.Level {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return LevelFromInt(n)
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || level == zerolog.NoLevel {
		return LevelFromInt(DefaultLevel)
	}
	return level
}

// NewFromEnv creates a logger based on environment variables
// TC_LOG_LEVEL: 1-4 or trace, debug, info, warn, error (default: 2)
// TC_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("TC_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("TC_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}

// NewFromConfigValues creates a logger from the resolved config level,
// keeping TC_LOG_FORMAT support.
func NewFromConfigValues(level int) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = LevelFromInt(level)
	if format := os.Getenv("TC_LOG_FORMAT"); format == "json" {
		cfg.Format = format
	}
	return New(cfg)
}
