package tenant

import "errors"

var (
	// ErrNoTenantInContext is returned when no tenant is found in context.
	ErrNoTenantInContext = errors.New("no tenant in context")

	// ErrInvalidIdentifier is returned by custom resolvers when a tenant
	// signal is present but malformed.
	ErrInvalidIdentifier = errors.New("invalid tenant identifier")
)
