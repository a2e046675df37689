// Package logging provides structured logging built on slog, with
// secret redaction and request-scoped context loggers.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	charm "github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelTrace is a custom level below debug for very verbose output.
const LevelTrace = slog.Level(-8)

// Config holds logging configuration.
type Config struct {
	Level   string     // trace, debug, info, warn, error
	Format  string     // json, text, pretty
	Service string     // service name for default attrs
	Version string     // service version for default attrs
	File    FileConfig // optional rolling file output
}

// FileConfig holds rolling log file settings. When enabled, log records
// are written to the file (always JSON) in addition to the terminal.
type FileConfig struct {
	Enabled    bool
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New creates a new configured slog.Logger writing to stdout.
func New(cfg *Config) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter creates a new configured slog.Logger with a custom writer.
// Includes secret redaction by default. See docs/SECRET_REDACTION.md for details.
func NewWithWriter(cfg *Config, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: NewReplaceAttr(),
	}

	var handler slog.Handler

	switch {
	case strings.EqualFold(cfg.Format, "text"):
		handler = slog.NewTextHandler(w, opts)
	case strings.EqualFold(cfg.Format, "pretty"):
		handler = newPrettyHandler(w, level)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	// Tee to a rolling file when configured. The file always gets JSON
	// regardless of the terminal format.
	if cfg.File.Enabled && cfg.File.Path != "" {
		fileHandler := slog.NewJSONHandler(newFileWriter(cfg.File), opts)
		handler = NewMultiHandler(handler, fileHandler)
	}

	// Add default attributes
	logger := slog.New(handler).With(
		slog.String("service_name", cfg.Service),
		slog.String("service_version", cfg.Version),
	)

	return logger
}

// newPrettyHandler builds a human-friendly terminal handler.
func newPrettyHandler(w io.Writer, level slog.Level) slog.Handler {
	return charm.NewWithOptions(w, charm.Options{
		ReportTimestamp: true,
		Level:           slogToCharmLevel(level),
	})
}

// newFileWriter builds the rolling file writer, creating the parent
// directory if needed.
func newFileWriter(cfg FileConfig) io.Writer {
	_ = os.MkdirAll(filepath.Dir(cfg.Path), 0o750)

	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

// slogToCharmLevel maps slog levels onto the pretty handler's levels.
// Levels below debug clamp to debug, levels above error clamp to error.
func slogToCharmLevel(level slog.Level) charm.Level {
	switch {
	case level < slog.LevelInfo:
		return charm.DebugLevel
	case level < slog.LevelWarn:
		return charm.InfoLevel
	case level < slog.LevelError:
		return charm.WarnLevel
	default:
		return charm.ErrorLevel
	}
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
