package dlist

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip building attributes entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Painting goroutines read it
// concurrently with SetLogger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for dlist and its sub-packages.
// By default nothing is logged.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: per-item draw diagnostics, optimizer statistics
//   - [slog.LevelInfo]: tile painter lifecycle
//   - [slog.LevelWarn]: content that a backend cannot render faithfully
//
// Example:
//
//	dlist.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (raster, tile) log through
// it so a single SetLogger call configures the whole module.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
