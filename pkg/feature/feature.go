package feature

import "context"

// Flag represents a feature flag with its static configuration. Flags are
// loaded once at startup; there is no runtime administration surface.
type Flag struct {
	Name            string   `json:"name" yaml:"name"`
	Description     string   `json:"description,omitempty" yaml:"description,omitempty"`
	Enabled         bool     `json:"enabled" yaml:"enabled"`
	DisabledTenants []string `json:"disabled_tenants,omitempty" yaml:"disabled_tenants,omitempty"`
}

// TenantExtractor retrieves the current tenant identifier from the context.
// It returns "" when the request carries no tenant; a tenant-less request
// is never excluded from a feature.
type TenantExtractor func(ctx context.Context) string

// Provider evaluates feature flags.
type Provider interface {
	// IsEnabled reports whether a feature is available in the given context.
	// An unknown flag yields false and ErrFlagNotFound.
	IsEnabled(ctx context.Context, flagName string) (bool, error)
}
