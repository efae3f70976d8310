package core

import "context"

type requestIDKey struct{}

// WithRequestID attaches a correlation id to ctx so every log line of one
// chat update or webhook delivery can be tied together
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the correlation id, or "" when none was set
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
