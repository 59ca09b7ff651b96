// Package logging is the structured logger shared by the server and the CLI.
// Call sites depend on the Logger interface; log/slog does the formatting.
package logging

import "context"

// Logger writes leveled records. Trailing args are alternating keys and
// values:
//
//	logger.Info(ctx, "note created", "note_id", id, "author_id", uid)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that adds args to every record.
	With(args ...any) Logger
}

type discard struct{}

// Nop returns a Logger that drops every record.
func Nop() Logger { return discard{} }

func (discard) Debug(context.Context, string, ...any) {}
func (discard) Info(context.Context, string, ...any)  {}
func (discard) Warn(context.Context, string, ...any)  {}
func (discard) Error(context.Context, string, ...any) {}
func (d discard) With(...any) Logger                  { return d }
