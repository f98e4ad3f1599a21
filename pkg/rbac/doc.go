// Package rbac provides flat, exact-match role authorization for HTTP
// endpoints.
//
// A requirement is a list of role names with OR semantics: the request
// passes when the authenticated identity holds any one of them. There is
// no role hierarchy or permission inheritance; "admin" grants access only
// where "admin" is listed.
//
// The package builds on pkg/authn for the identity and on pkg/apierr for
// rejections. An unauthenticated request hitting a non-empty requirement
// is rejected with USER_NOT_FOUND; an authenticated one missing every
// required role is rejected with INSUFFICIENT_ROLES, echoing the required
// and held roles in the response details.
//
// Usage:
//
//	r.With(rbac.RequireRoles("editor", "admin")).Post("/api/articles", createArticle)
//
// For checks that depend on request data, use Check inside the handler:
//
//	if err := rbac.Check(ctx, "admin"); err != nil { ... }
package rbac
