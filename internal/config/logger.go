package config

import (
	"io"
	"log/slog"
	"os"
)

const serviceName = "account-api"

// NewLogger builds the process logger on stdout.
func (c *LoggerConfig) NewLogger() *slog.Logger {
	return c.NewLoggerTo(os.Stdout)
}

// NewLoggerTo builds a logger writing to w in the configured format. Source
// locations are attached at debug and error levels only. Every record carries
// service=account-api.
func (c *LoggerConfig) NewLoggerTo(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug || level == slog.LevelError,
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if c.Format == "text" {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("service", serviceName))
}
