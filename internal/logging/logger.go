// Package logging is the structured logger of the Blogify client: a small
// context-aware interface and its log/slog implementation.
package logging

import "context"

// Logger takes a message plus alternating key/value args:
//
//	log.Info(ctx, "auth mode changed", "from", from, "to", to)
//
// Debug is for per-request detail and is off at the default level.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that adds args to every record.
	With(args ...any) Logger
}
