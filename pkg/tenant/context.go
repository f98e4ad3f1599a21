package tenant

import (
	"context"
	"log/slog"
)

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithContext adds a tenant identity to the context.
func WithContext(ctx context.Context, info *Info) context.Context {
	return context.WithValue(ctx, contextKey{}, info)
}

// FromContext retrieves the tenant identity from the context.
// Returns nil, false if no tenant is present.
func FromContext(ctx context.Context) (*Info, bool) {
	info, ok := ctx.Value(contextKey{}).(*Info)
	if !ok || info == nil {
		return nil, false
	}
	return info, true
}

// IDFromContext retrieves just the tenant ID from the context.
// Returns "" and false if no tenant is present.
func IDFromContext(ctx context.Context) (string, bool) {
	info, ok := FromContext(ctx)
	if !ok {
		return "", false
	}
	return info.TenantID, true
}

// MustFromContext retrieves the tenant identity from the context.
// Panics if no tenant is present. Use this only in handlers that
// absolutely require a tenant to function.
func MustFromContext(ctx context.Context) *Info {
	info, ok := FromContext(ctx)
	if !ok {
		panic("tenant: no tenant in context")
	}
	return info
}

// LoggerExtractor returns a ContextExtractor for the logger that extracts
// the tenant ID from context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := IDFromContext(ctx); ok {
			return slog.String("tenant_id", id), true
		}
		return slog.Attr{}, false
	}
}
