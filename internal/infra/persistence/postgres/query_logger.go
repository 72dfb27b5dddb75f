package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"backoffice/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger adapts GORM's logging interface onto slog. Record-not-found is
// a normal outcome for lookups and is never logged as an error.
type queryLogger struct {
	base  *slog.Logger
	level logger.LogLevel
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &queryLogger{base: base, level: level}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &queryLogger{base: l.base, level: level}
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.base != nil && l.level >= logger.Info {
		l.base.InfoContext(ctx, "GORM: "+fmt.Sprintf(msg, args...))
	}
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.base != nil && l.level >= logger.Warn {
		l.base.WarnContext(ctx, "GORM: "+fmt.Sprintf(msg, args...))
	}
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.base != nil && l.level >= logger.Error {
		l.base.ErrorContext(ctx, "GORM: "+fmt.Sprintf(msg, args...))
	}
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		l.log(ctx, slog.LevelError, "Query failed", fc, elapsed, slog.String("error", err.Error()))
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		l.log(ctx, slog.LevelWarn, "Slow query", fc, elapsed, slog.Duration("threshold", slowQueryThreshold))
	case l.level >= logger.Info:
		l.log(ctx, slog.LevelInfo, "Query", fc, elapsed)
	}
}

func (l *queryLogger) log(
	ctx context.Context,
	level slog.Level,
	msg string,
	fc func() (string, int64),
	elapsed time.Duration,
	extra ...slog.Attr,
) {
	sql, rows := fc()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)

	l.base.LogAttrs(ctx, level, msg, attrs...)
}
