package logging

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

type contextKey string

const traceIDKey contextKey = "trace_id"

// NewTraceID returns a new ULID string.
func NewTraceID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// ContextWithTraceID stores traceID on ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext returns the trace id stored on ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(traceIDKey).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateTraceID returns the trace id on ctx or a fresh one.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return NewTraceID()
}

// FromContext returns the logger attached to ctx with the trace id added.
// Without an attached logger it returns zerolog's disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if id := TraceIDFromContext(ctx); id != "" {
		withID := l.With().Str("trace_id", id).Logger()
		return &withID
	}
	return l
}
