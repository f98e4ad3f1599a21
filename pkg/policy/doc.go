// Package policy composes the access-control gates into per-endpoint
// chains driven by declarative policy records.
//
// Each route is described by an Endpoint: a public marker, an optional
// role requirement, and an optional feature flag. A Guard turns an
// Endpoint into an ordered middleware chain — authentication (pkg/authn),
// role authorization (pkg/rbac), feature gate (pkg/feature) — that mounts
// onto a chi router. Routes and their policies live together in a Table,
// one reviewable map from route identifier to Endpoint, instead of being
// scattered across handler annotations.
//
// Usage:
//
//	table, err := policy.NewTable(map[string]policy.Endpoint{
//	    "GET /api/articles":  {Public: true},
//	    "POST /api/articles": {Roles: []string{"editor", "admin"}},
//	    "GET /api/reports":   {Roles: []string{"admin"}, Feature: "beta-reports"},
//	})
//	guard, err := policy.NewGuard(validator, features)
//
//	r.With(guard.Protect(table.Endpoint("POST /api/articles"))...).
//	    Post("/api/articles", createArticle)
//
// Gate order is fixed because later gates read context the earlier ones
// write: the role gate needs the authenticated identity, and the feature
// gate reads the tenant resolved further up the stack.
package policy
