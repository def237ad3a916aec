package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

var log *slog.Logger

func init() {
	level := slog.LevelInfo
	if os.Getenv("PHOTOSHARE_DEBUG") == "true" {
		level = slog.LevelDebug
	}
	SetLevel(level)
}

// SetLevel replaces the package logger with one writing at level.
func SetLevel(level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}
	handler := slog.NewTextHandler(os.Stderr, opts)
	log = slog.New(handler)
}

// Configure applies an explicit level name. An empty name keeps the level
// chosen from PHOTOSHARE_DEBUG.
func Configure(level string) {
	if level == "" {
		return
	}
	SetLevel(ParseLevel(level))
}

// Enabled reports whether messages at level are written.
func Enabled(level slog.Level) bool {
	return log.Enabled(context.Background(), level)
}

// ParseLevel maps debug/info/warn/error to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	log.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	log.Error(msg, args...)
}

func Fatal(msg string, args ...any) {
	log.Error(msg, args...)
	os.Exit(1)
}
