package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes ORM statements into the application's slog logger.
// Statements are logged at debug, slow ones at warn and failures at error.
// Record-not-found is an expected outcome and is never logged as an error.
type GormLogger struct {
	logger        *slog.Logger
	slowThreshold time.Duration
	level         gormlogger.LogLevel
}

// NewGormLogger creates a GormLogger. A zero slowThreshold disables slow
// query warnings.
func NewGormLogger(logger *slog.Logger, slowThreshold time.Duration) *GormLogger {
	return &GormLogger{
		logger:        logger.With("component", "orm"),
		slowThreshold: slowThreshold,
		level:         gormlogger.Info,
	}
}

// LogMode returns a copy of the logger with the given level.
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.logger.InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.logger.WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.logger.ErrorContext(ctx, fmt.Sprintf(msg, args...))
	}
}

// Trace logs a single executed statement.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		l.logger.ErrorContext(ctx, "query failed",
			"error", err,
			"sql", sql,
			"rows", rows,
			"elapsed", elapsed,
		)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.logger.WarnContext(ctx, "slow query",
			"sql", sql,
			"rows", rows,
			"elapsed", elapsed,
			"threshold", l.slowThreshold,
		)
	case l.level >= gormlogger.Info && l.logger.Enabled(ctx, slog.LevelDebug):
		sql, rows := fc()
		l.logger.DebugContext(ctx, "query",
			"sql", sql,
			"rows", rows,
			"elapsed", elapsed,
		)
	}
}
