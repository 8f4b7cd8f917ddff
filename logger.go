package fastuidraw

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards everything; it is the default logger so the package
// produces no ambient output until a caller opts in via SetLogger.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler       { return h }
func (h nopHandler) WithGroup(string) slog.Handler            { return h }

func newNopLogger() *slog.Logger {
	return slog.New(nopHandler{})
}

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs the logger used for the warnings described in
// SPEC_FULL.md §7 (triangulation failure, invalid fill-rule enum). Passing
// nil restores the no-op logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// logger returns the currently installed package logger.
func logger() *slog.Logger {
	return loggerPtr.Load()
}
