package utils

import (
	"context"
	"log/slog"
	"os"
)

// NewLogger builds the process logger: line-delimited JSON records with info
// and below on stdout, warnings and errors on stderr.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(&splitLevelHandler{
		out: slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}),
		err: slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	})
}

// splitLevelHandler routes records to one of two handlers by level.
type splitLevelHandler struct {
	out slog.Handler
	err slog.Handler
}

func (h *splitLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if level >= slog.LevelWarn {
		return h.err.Enabled(ctx, level)
	}
	return h.out.Enabled(ctx, level)
}

func (h *splitLevelHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= slog.LevelWarn {
		return h.err.Handle(ctx, record)
	}
	return h.out.Handle(ctx, record)
}

func (h *splitLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &splitLevelHandler{
		out: h.out.WithAttrs(attrs),
		err: h.err.WithAttrs(attrs),
	}
}

func (h *splitLevelHandler) WithGroup(name string) slog.Handler {
	return &splitLevelHandler{
		out: h.out.WithGroup(name),
		err: h.err.WithGroup(name),
	}
}
