package logging

import (
	"context"
	"io"
	"log/slog"
)

// Format selects the slog handler used by New.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// Options configures New.
type Options struct {
	Format Format
	Level  slog.Level
}

type slogLogger struct {
	h *slog.Logger
}

// New builds a Logger writing to w.
func New(w io.Writer, o Options) Logger {
	ho := &slog.HandlerOptions{Level: o.Level}
	var h slog.Handler
	switch o.Format {
	case FormatJSON:
		h = slog.NewJSONHandler(w, ho)
	default:
		h = slog.NewTextHandler(w, ho)
	}
	return slogLogger{h: slog.New(h)}
}

// NewForMode returns the process logger: JSON from INFO up in production,
// text including DEBUG otherwise.
func NewForMode(w io.Writer, production bool) Logger {
	if production {
		return New(w, Options{Format: FormatJSON, Level: slog.LevelInfo})
	}
	return New(w, Options{Format: FormatText, Level: slog.LevelDebug})
}

func (s slogLogger) log(ctx context.Context, lvl slog.Level, msg string, args []any) {
	if ctx == nil {
		ctx = context.Background()
	}
	s.h.Log(ctx, lvl, msg, args...)
}

func (s slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelDebug, msg, args)
}

func (s slogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelInfo, msg, args)
}

func (s slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelWarn, msg, args)
}

func (s slogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelError, msg, args)
}

func (s slogLogger) With(args ...any) Logger {
	return slogLogger{h: s.h.With(args...)}
}
