package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// logger forwards gorm's log output to zerolog so that database logs
// share the format of the request logs.
type logger struct {
	Logger zerolog.Logger
}

// LogMode is a no-op, the level is controlled by zerolog's global
// level.
func (l *logger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *logger) Info(_ context.Context, msg string, args ...any) {
	l.Logger.Info().Msgf(msg, args...)
}

func (l *logger) Warn(_ context.Context, msg string, args ...any) {
	l.Logger.Warn().Msgf(msg, args...)
}

func (l *logger) Error(_ context.Context, msg string, args ...any) {
	l.Logger.Error().Msgf(msg, args...)
}

// Trace logs the executed statement and its duration. Missing records
// are not errors here, they are reported to the client as 404 by the
// handlers.
func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, _ := fc()

	event := l.Logger.Debug()
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		event = l.Logger.Error().Err(err)
	}

	event.
		Str("sql", sql).
		Dur("duration", time.Since(begin)).
		Msg("database")
}
