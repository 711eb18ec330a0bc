package log

import (
	"context"

	"github.com/rs/zerolog"
)

// loggerKey is the context key under which a scoped logger travels.
type loggerKey struct{}

// WithLogger returns a child context carrying the given logger. The request
// middleware and background enrichment use it to attach scoped fields such
// as the request id or message id.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// Ctx returns the logger carried by ctx, falling back to the global logger
// when none was attached.
func Ctx(ctx context.Context) zerolog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(zerolog.Logger); ok {
		return l
	}
	return L()
}
