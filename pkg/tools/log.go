package tools

import "log/slog"

// SlogAdapter satisfies Logger with the stdlib structured logger, the
// teacher's own logging choice throughout pkg/agent/controller.
type SlogAdapter struct {
	L *slog.Logger
}

func (a SlogAdapter) Info(msg string, args ...any)  { a.L.Info(msg, args...) }
func (a SlogAdapter) Warn(msg string, args ...any)  { a.L.Warn(msg, args...) }
func (a SlogAdapter) Error(msg string, args ...any) { a.L.Error(msg, args...) }
