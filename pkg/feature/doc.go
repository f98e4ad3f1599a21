// Package feature gates HTTP endpoints behind statically configured
// feature flags with per-tenant exclusions.
//
// Flags are loaded once at startup, either in code or from a YAML file via
// LoadFile, and evaluated by a StaticProvider. A flag is available when it
// exists, is enabled, and the current tenant is not listed in its
// disabled_tenants exclusion list. Requests without a resolved tenant are
// never excluded. The gate fails closed: unknown flags and provider errors
// reject the request with FEATURE_DISABLED.
//
// Usage:
//
//	flags, err := feature.LoadFile("features.yaml")
//	provider, err := feature.NewStaticProvider(flags)
//	r.With(feature.RequireFeature(provider, "beta-reports")).Get("/api/reports", listReports)
//
// The tenant is read from pkg/tenant by default; override it with
// WithTenantExtractor when tenancy is carried differently.
package feature
