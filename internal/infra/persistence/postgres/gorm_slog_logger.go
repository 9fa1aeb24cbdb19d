package postgres

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"ridehail/config"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger adapts gorm's logger.Interface onto slog so SQL logs
// share the service's structured output.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
	debug         bool
}

func newGormSlogLogger(logger *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &gormSlogLogger{
		logger:        logger.With(slog.String("component", "gorm")),
		level:         level,
		slowThreshold: slowQueryThreshold,
		debug:         cfg != nil && cfg.Env.Debug,
	}
}

func (l *gormSlogLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.logger.InfoContext(ctx, msg, slog.Any("args", args))
	}
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.logger.WarnContext(ctx, msg, slog.Any("args", args))
	}
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.logger.ErrorContext(ctx, msg, slog.Any("args", args))
	}
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case l.shouldLogError(err):
		sql, rows := fc()
		l.logger.LogAttrs(ctx, slog.LevelError, "sql query failed",
			l.queryAttrs(sql, rows, elapsed, slog.String("error", err.Error()))...)
	case l.shouldLogSlow(elapsed):
		sql, rows := fc()
		l.logger.LogAttrs(ctx, slog.LevelWarn, "slow sql query",
			l.queryAttrs(sql, rows, elapsed, slog.Duration("threshold", l.slowThreshold))...)
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.logger.LogAttrs(ctx, slog.LevelDebug, "sql query", l.queryAttrs(sql, rows, elapsed)...)
	}
}

func (l *gormSlogLogger) queryAttrs(sql string, rows int64, elapsed time.Duration, extra ...slog.Attr) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(extra)+3)
	attrs = append(attrs,
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	)

	return append(attrs, extra...)
}

func (l *gormSlogLogger) shouldLogError(err error) bool {
	if err == nil || l.level < gormlogger.Error {
		return false
	}
	// ErrRecordNotFound is an expected lookup miss, not a query failure.
	if stderrors.Is(err, gorm.ErrRecordNotFound) && !l.debug {
		return false
	}

	return true
}

func (l *gormSlogLogger) shouldLogSlow(elapsed time.Duration) bool {
	return l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn
}
