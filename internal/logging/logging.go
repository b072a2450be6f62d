// Package logging sets up the structured file logger. The chat owns the
// terminal while it runs, so nothing may be logged to stdout or stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/diogo/termchat/internal/config"
)

const (
	maxLogSizeMB  = 5
	maxLogBackups = 3
	maxLogAgeDays = 14
)

// Init builds a slog logger writing to a rotating file and installs it as the
// default logger. On failure a discarding logger is still returned so callers
// can proceed without logs.
func Init(cfg config.Config) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}

	logPath, err := config.GetLogPath(cfg)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(logPath), 0o700)
	}
	if err != nil {
		logger := Discard()
		slog.SetDefault(logger)
		return logger, err
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	}

	logger := slog.New(newHandler(cfg.LogFormat, writer, opts))
	slog.SetDefault(logger)
	return logger, nil
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newHandler(format string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text":
		return slog.NewTextHandler(out, opts)
	default:
		return slog.NewJSONHandler(out, opts)
	}
}
