package clientip

import (
	"context"
)

type contextKey struct{}

// WithContext stores the client IP in the context.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext retrieves the client IP from the context, or "" when the
// request never passed through Middleware.
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}
