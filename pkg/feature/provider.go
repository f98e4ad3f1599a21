package feature

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrymomot/blogkit/pkg/tenant"
)

// StaticProvider evaluates flags from a fixed set loaded at construction.
// The set is immutable afterwards, so lookups need no locking.
type StaticProvider struct {
	flags     map[string]Flag
	extractor TenantExtractor
}

// Option configures a StaticProvider.
type Option func(*StaticProvider)

// WithTenantExtractor replaces the tenant lookup used for per-tenant
// exclusions. The default reads the tenant resolved by pkg/tenant.
func WithTenantExtractor(extractor TenantExtractor) Option {
	return func(p *StaticProvider) {
		if extractor != nil {
			p.extractor = extractor
		}
	}
}

// NewStaticProvider builds a provider over the given flags. Flag names must
// be non-empty and unique.
func NewStaticProvider(flags []Flag, opts ...Option) (*StaticProvider, error) {
	provider := &StaticProvider{
		flags: make(map[string]Flag, len(flags)),
		extractor: func(ctx context.Context) string {
			id, _ := tenant.IDFromContext(ctx)
			return id
		},
	}
	for _, opt := range opts {
		opt(provider)
	}

	for _, flag := range flags {
		if flag.Name == "" {
			return nil, errors.Join(ErrInvalidFlag, errors.New("flag name cannot be empty"))
		}
		if _, exists := provider.flags[flag.Name]; exists {
			return nil, errors.Join(ErrInvalidFlag, fmt.Errorf("duplicate flag %q", flag.Name))
		}

		// Copy the exclusion list so later mutation of the input slice
		// cannot change evaluation results.
		flag.DisabledTenants = slices.Clone(flag.DisabledTenants)
		provider.flags[flag.Name] = flag
	}

	return provider, nil
}

// IsEnabled reports whether a flag is available for the tenant in ctx.
// A flag is available when it exists, is globally enabled, and the current
// tenant is not excluded. Requests without a tenant are never excluded.
func (p *StaticProvider) IsEnabled(ctx context.Context, flagName string) (bool, error) {
	flag, exists := p.flags[flagName]
	if !exists {
		return false, ErrFlagNotFound
	}

	if !flag.Enabled {
		return false, nil
	}

	if tenantID := p.extractor(ctx); tenantID != "" && slices.Contains(flag.DisabledTenants, tenantID) {
		return false, nil
	}

	return true, nil
}
