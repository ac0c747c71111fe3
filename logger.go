package kaleido

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled is false at all levels, so the
// per-frame Debug calls in the driver cost no formatting when logging is off.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

// current holds the logger shared by kaleido and frameloop.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes kaleido's log output to l. Nothing is logged until it
// is called; passing nil silences logging again. It may be called while an
// animation is running.
//
// Levels:
//   - [slog.LevelDebug]: one record per frame (angle, frame number, timing)
//   - [slog.LevelInfo]: driver start, frame limit, scheduler start and stop
//   - [slog.LevelWarn]: a skipped frame or a halted animation, with its error
//
// Example:
//
//	kaleido.SetLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger. frameloop logs through
// it so one call configures the whole module.
func Logger() *slog.Logger {
	return current.Load()
}
