package video

import (
	"context"
	"log/slog"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// SetLogger replaces the engine logger. Passing nil silences it.
//
// Levels used by the engine:
//   - [slog.LevelDebug]: rejected configuration calls
//   - [slog.LevelInfo]: engine lifecycle
func (e *Engine) SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	e.logger = l
}

// Logger returns the engine logger.
func (e *Engine) Logger() *slog.Logger {
	return e.logger
}
