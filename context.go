package mvault

import (
	"context"

	"go.uber.org/zap"
)

// Context is just the request-scoped context.Context. We use the alias so
// most of the code doesn't need to import the stdlib package and to leave
// room for a stricter type later.
type Context = context.Context

type contextKey int

const (
	contextKeyLogger contextKey = iota
)

// DefaultLogger is used for all contexts that have not set anything
// themselves.
var DefaultLogger = zap.NewNop()

// WithLogger sets the logger for this context. The logger set here is
// returned by GetLogger for this context and all contexts derived from it.
func WithLogger(ctx Context, logger *zap.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the logger stored in the context, or DefaultLogger if
// none was set.
func GetLogger(ctx Context) *zap.Logger {
	if logger, ok := ctx.Value(contextKeyLogger).(*zap.Logger); ok {
		return logger
	}
	return DefaultLogger
}
