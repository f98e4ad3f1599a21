package clientip

import "net/http"

// Middleware resolves the client IP once per request and caches it in the
// context for downstream consumers.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := GetIP(r)
		ctx := WithContext(r.Context(), ip)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
