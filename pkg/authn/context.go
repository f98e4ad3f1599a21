package authn

import (
	"context"
	"log/slog"
)

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithContext attaches an authenticated identity to the context.
func WithContext(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

// FromContext retrieves the authenticated identity from the context.
// Returns nil, false when the request is unauthenticated.
func FromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(contextKey{}).(*Identity)
	if !ok || identity == nil {
		return nil, false
	}
	return identity, true
}

// FieldFromContext retrieves a single identity field by name.
// Returns nil, false when no identity is attached or the field is unknown.
func FieldFromContext(ctx context.Context, name string) (any, bool) {
	identity, ok := FromContext(ctx)
	if !ok {
		return nil, false
	}
	return identity.Field(name)
}

// LoggerExtractor returns a ContextExtractor for the logger that extracts
// the authenticated user ID from context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if identity, ok := FromContext(ctx); ok {
			return slog.String("user_id", identity.UserID), true
		}
		return slog.Attr{}, false
	}
}
