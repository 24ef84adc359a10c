// internal/logger/config.go
package logger

import "log/slog"

// Config holds logger settings loaded from the [logger] config table.
type Config struct {
	LogLevel    string `toml:"log_level"`     // "debug", "info", "warn", "error"
	LogFilePath string `toml:"log_file_path"` // Empty means no file logging
}

// ParseLevel converts the configured level string to a slog.Level.
// Unknown strings fall back to Info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
