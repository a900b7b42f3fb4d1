package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type sourceHandler struct {
	handler    slog.Handler
	sourceFrom slog.Level
}

// NewSourceHandler wraps handler and attaches the caller location to every record
// at or above sourceFrom. The wrapped handler must not set AddSource itself.
func NewSourceHandler(handler slog.Handler, sourceFrom slog.Level) slog.Handler {
	return &sourceHandler{handler: handler, sourceFrom: sourceFrom}
}

func (h *sourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *sourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.sourceFrom && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		}))
	}
	return h.handler.Handle(ctx, r)
}

func (h *sourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceHandler{handler: h.handler.WithAttrs(attrs), sourceFrom: h.sourceFrom}
}

func (h *sourceHandler) WithGroup(name string) slog.Handler {
	return &sourceHandler{handler: h.handler.WithGroup(name), sourceFrom: h.sourceFrom}
}
