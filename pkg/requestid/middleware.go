package requestid

import (
	"net/http"

	"github.com/google/uuid"
)

// Header is the canonical request-ID header name.
const Header = "X-Request-ID"

// Middleware attaches a correlation ID to every request. An inbound
// X-Request-ID header is trusted and reused verbatim so upstream callers
// can thread their own IDs through; otherwise a new UUIDv4 is generated.
// The chosen ID is stored in the request context and echoed back in the
// response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}
