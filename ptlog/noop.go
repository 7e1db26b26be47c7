// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ptlog

import "go.uber.org/zap"

// noop discards everything. Used by default for single-process runs and in
// tests that don't want to assert on log output.
type noop struct{}

// NewNoOpLogger returns a Logger that discards every call.
func NewNoOpLogger() Logger {
	return noop{}
}

func (noop) Debug(string, ...zap.Field) {}
func (noop) Warn(string, ...zap.Field)  {}
func (noop) Error(string, ...zap.Field) {}
func (noop) With(...zap.Field) Logger   { return noop{} }
