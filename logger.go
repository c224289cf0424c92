package texmod

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for texmod.
// By default, texmod produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior.
//
// Every record carries a "component" attribute naming its source: image,
// sampler, shader or compositor.
//
// Log levels used by texmod:
//   - [slog.LevelDebug]: resource creation (image size and format, sampler
//     policy), SPIR-V size, compositor shutdown
//   - [slog.LevelInfo]: compositor startup with its worker count and span size
//   - [slog.LevelWarn]: shader compilation failures
//
// Nothing is logged on the per-fragment path.
//
// Example:
//
//	texmod.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by texmod.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// componentLogger returns the current logger scoped to one part of texmod.
// It is resolved on every call so that SetLogger takes effect immediately.
func componentLogger(component string) *slog.Logger {
	return Logger().With("component", component)
}
