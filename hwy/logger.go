// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// nopLogger is a package variable, not set in init, because dispatch
// detection logs from init functions that may run first.
var nopLogger = slog.New(nopHandler{})

// loggerPtr stores the active logger, or nil for the silent default.
var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger configures the logger used by hwy and its contrib packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Only configuration events are logged (dispatch level, kernel strategy
// selection), at [slog.LevelDebug], or [slog.LevelWarn] for ignored
// settings. Kernels never log.
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(l)
}

// Logger returns the current logger. Contrib packages call this to share
// the same configuration without their own setters.
func Logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return nopLogger
}
