// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ptlog is the structured logging facade for the swap core,
// narrowed from the teacher's github.com/luxfi/log.Logger surface to the
// handful of calls the round-level driver (pt.Driver) actually makes: round
// completion and round failures. It is backed by go.uber.org/zap, the same
// logging library the rest of the dependency pack standardizes on.
package ptlog

import "go.uber.org/zap"

// Logger is the capability round-level orchestration (pt.Driver) is
// constructed with. Nothing in the per-replica hot loop (swap_stat,
// swap_decision) takes a Logger, and neither does the Entangler or the
// tempering package.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	With(fields ...zap.Field) Logger
}

// zapLogger adapts a *zap.Logger to Logger.
type zapLogger struct {
	l *zap.Logger
}

// NewZapLogger wraps an existing *zap.Logger.
func NewZapLogger(l *zap.Logger) Logger {
	return &zapLogger{l: l}
}

// NewProduction returns a Logger backed by zap's production configuration.
func NewProduction() (Logger, error) {
	l, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return NewZapLogger(l), nil
}

func (z *zapLogger) Debug(msg string, fields ...zap.Field) { z.l.Debug(msg, fields...) }
func (z *zapLogger) Warn(msg string, fields ...zap.Field)  { z.l.Warn(msg, fields...) }
func (z *zapLogger) Error(msg string, fields ...zap.Field) { z.l.Error(msg, fields...) }

func (z *zapLogger) With(fields ...zap.Field) Logger {
	return &zapLogger{l: z.l.With(fields...)}
}
