package gormdb_adapter

import (
	"context"
	"errors"
	"fmt"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/port"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLoggerBridge направляет логи gorm в наш LoggerPort.
// Логгер берется из контекста запроса, без него используется базовый.
type GormLoggerBridge struct {
	base          port.LoggerPort
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func NewGormLoggerBridge(base port.LoggerPort, level gormlogger.LogLevel, slowThreshold time.Duration) *GormLoggerBridge {
	return &GormLoggerBridge{
		base:          base.WithFields(port.Fields{"component": "gorm"}),
		level:         level,
		slowThreshold: slowThreshold,
	}
}

func (b *GormLoggerBridge) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *b
	clone.level = level
	return &clone
}

func (b *GormLoggerBridge) logger(ctx context.Context) port.LoggerPort {
	return contextkeys.LoggerFromContextOr(ctx, b.base)
}

func (b *GormLoggerBridge) Info(ctx context.Context, msg string, data ...interface{}) {
	if b.level >= gormlogger.Info {
		b.logger(ctx).Info(fmt.Sprintf(msg, data...), nil)
	}
}

func (b *GormLoggerBridge) Warn(ctx context.Context, msg string, data ...interface{}) {
	if b.level >= gormlogger.Warn {
		b.logger(ctx).Warn(fmt.Sprintf(msg, data...), nil)
	}
}

func (b *GormLoggerBridge) Error(ctx context.Context, msg string, data ...interface{}) {
	if b.level >= gormlogger.Error {
		b.logger(ctx).Error(fmt.Sprintf(msg, data...), nil, nil)
	}
}

// Trace пишет каждый SQL-запрос. ErrRecordNotFound ошибкой не считается.
func (b *GormLoggerBridge) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if b.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := port.Fields{
		"sql":           sql,
		"rows_affected": rows,
		"duration_ms":   float64(elapsed.Microseconds()) / 1000,
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && b.level >= gormlogger.Error:
		b.logger(ctx).Error("SQL query failed", err, fields)
	case b.slowThreshold > 0 && elapsed > b.slowThreshold && b.level >= gormlogger.Warn:
		fields["slow_threshold_ms"] = b.slowThreshold.Milliseconds()
		b.logger(ctx).Warn("Slow SQL query", fields)
	case b.level >= gormlogger.Info:
		b.logger(ctx).Debug("SQL query", fields)
	}
}
