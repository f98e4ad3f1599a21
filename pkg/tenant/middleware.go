package tenant

import (
	"net/http"
	"strings"
)

// Middleware derives the tenant identity for every request and adds it to
// the request context. When a tenant is resolved (from any source) the
// response X-Tenant-ID header is set so clients can confirm which tenant
// served them; when no tenant is found the request proceeds without tenant
// context and the header stays unset. Resolution failures terminate the
// request via the configured error handler.
func Middleware(resolver Resolver, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		errorHandler:  defaultErrorHandler,
		excludedPaths: DefaultExcludedPaths,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if pathExcluded(cfg.excludedPaths, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			info, err := resolver.Resolve(r)
			if err != nil {
				cfg.errorHandler(w, r, err)
				return
			}

			if info == nil {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set(Header, info.TenantID)
			ctx := WithContext(r.Context(), info)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireTenant creates middleware that ensures a tenant is present in the
// context. Use it on route groups that cannot operate without tenant
// context, downstream of Middleware with a resolver that has no fallback.
func RequireTenant(errorHandler ErrorHandler) func(http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = defaultErrorHandler
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := FromContext(r.Context()); !ok {
				errorHandler(w, r, ErrNoTenantInContext)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// pathExcluded reports whether path matches an excluded entry exactly or
// as a segment-aligned prefix. "/api/public" excludes "/api/public/y" but
// not "/api/publication".
func pathExcluded(excluded []string, path string) bool {
	for _, p := range excluded {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
