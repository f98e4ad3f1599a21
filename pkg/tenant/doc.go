// Package tenant provides multi-tenancy support through per-request tenant
// identification and context propagation.
//
// The tenant identity is derived from the request itself rather than loaded
// from a data source: the X-Tenant-ID header, the hostname subdomain, or a
// configured default, in that fixed precedence. The result is an Info value
// recording the tenant ID and which source produced it.
//
// # Resolution rules
//
//  1. Excluded paths (health probes, public and registration endpoints)
//     skip resolution entirely and proceed with no tenant.
//  2. A non-empty X-Tenant-ID header wins over everything; if the header
//     was supplied multiple times the first value is used.
//  3. Otherwise the hostname is examined: localhost and IPv4 addresses
//     carry no subdomain; hostnames with at least three labels contribute
//     their first label unless it is a reserved name (www, api, admin,
//     app — matched case-sensitively, so "WWW" is a valid tenant label).
//  4. Otherwise the configured default tenant applies, when set.
//  5. Otherwise the request proceeds without tenant context; this is not
//     an error.
//
// When a tenant is resolved the middleware echoes it in the response
// X-Tenant-ID header.
//
// # Usage
//
//	import "github.com/dmitrymomot/blogkit/pkg/tenant"
//
//	resolver := tenant.NewResolver("default-tenant")
//	router.Use(tenant.Middleware(resolver))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		info, ok := tenant.FromContext(r.Context())
//		if !ok {
//			// request has no tenant context
//			return
//		}
//		_ = info.TenantID
//	}
//
// Custom strategies implement the Resolver interface or wrap a function in
// ResolverFunc; ChainResolver composes them with fail-closed semantics (the
// first resolver error terminates the request as a BAD_REQUEST rejection).
package tenant
