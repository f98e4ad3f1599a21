package authn

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/blogkit/pkg/apierr"
)

// TokenExtractor locates the bearer credential on a request. It returns
// "" when the request carries none.
type TokenExtractor func(r *http.Request) string

// BearerTokenExtractor extracts tokens from "Authorization: Bearer <token>"
// headers, the standard transport per RFC 6750.
func BearerTokenExtractor(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// config configures the authentication gate.
type config struct {
	public    bool
	extractor TokenExtractor
}

// Option configures the middleware.
type Option func(*config)

// WithPublic marks the guarded endpoint as public: the gate lets every
// request through without inspecting credentials.
func WithPublic(public bool) Option {
	return func(c *config) { c.public = public }
}

// WithExtractor replaces the bearer-header token extractor.
func WithExtractor(extractor TokenExtractor) Option {
	return func(c *config) {
		if extractor != nil {
			c.extractor = extractor
		}
	}
}

// Middleware is the authentication gate. Public endpoints bypass it
// entirely. Otherwise the extracted credential is delegated to the
// validator and the outcome is mapped onto typed rejections with fixed
// precedence: TOKEN_EXPIRED > INVALID_TOKEN > TOKEN_MISSING >
// UNAUTHORIZED. A request with no credential at all carries neither an
// error nor an identity and falls through to UNAUTHORIZED. On success the
// identity is attached to the request context.
func Middleware(validator TokenValidator, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{extractor: BearerTokenExtractor}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.public {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()

			var (
				identity *Identity
				err      error
			)
			if token := cfg.extractor(r); token != "" {
				identity, err = validator.Validate(ctx, token)
			}

			switch {
			case errors.Is(err, ErrTokenExpired):
				apierr.New(ctx, apierr.CodeTokenExpired, "Token has expired").Render(w)
			case errors.Is(err, ErrTokenInvalid):
				apierr.New(ctx, apierr.CodeTokenInvalid, "Invalid token").Render(w)
			case errors.Is(err, ErrTokenMissing):
				apierr.New(ctx, apierr.CodeTokenMissing, "Authentication token is required").Render(w)
			case err != nil || identity == nil:
				apierr.New(ctx, apierr.CodeUnauthorized, "Unauthorized access").Render(w)
			default:
				next.ServeHTTP(w, r.WithContext(WithContext(ctx, identity)))
			}
		})
	}
}
