package logger

import "context"

// contextKey is a private type so request IDs cannot collide with context
// values set by chi or other middleware.
type contextKey struct{}

var requestIDKey = contextKey{}

// WithRequestID stores a request ID in the context. The HTTP request logger
// copies chi's generated ID here so services and handlers can correlate
// their log lines with the access log.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the request ID stored by WithRequestID, or an empty
// string for contexts outside the request path.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
