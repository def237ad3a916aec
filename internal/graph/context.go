package graph

import "context"

type requestIDKey struct{}

// WithRequestID attaches the id used to correlate log lines for one operation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
