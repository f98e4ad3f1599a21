package rbac

import (
	"context"
	"net/http"
	"slices"

	"github.com/dmitrymomot/blogkit/pkg/apierr"
	"github.com/dmitrymomot/blogkit/pkg/authn"
)

// HasAnyRole reports whether userRoles grants at least one of the required
// roles. Matching is exact and case-sensitive; there is no role hierarchy,
// so "admin" does not imply "editor".
func HasAnyRole(userRoles, required []string) bool {
	for _, role := range required {
		if slices.Contains(userRoles, role) {
			return true
		}
	}
	return false
}

// Check verifies that the identity in ctx holds at least one of the required
// roles. An empty requirement always passes. It is the handler-level
// counterpart of RequireRoles for checks that depend on request data.
func Check(ctx context.Context, required ...string) error {
	if len(required) == 0 {
		return nil
	}

	identity, ok := authn.FromContext(ctx)
	if !ok {
		return ErrNoIdentity
	}
	if !HasAnyRole(identity.Roles, required) {
		return ErrInsufficientRoles
	}
	return nil
}

// RequireRoles guards an endpoint with a role requirement. An empty
// requirement admits every request, including unauthenticated ones. A
// non-empty requirement demands an authenticated identity holding at least
// one of the listed roles. Rejections echo both the requirement and the
// identity's roles so clients can see exactly what was compared.
func RequireRoles(required ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(required) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			identity, ok := authn.FromContext(ctx)
			if !ok {
				apierr.New(ctx, apierr.CodeUserNotFound, "User not Authenticated").Render(w)
				return
			}

			if !HasAnyRole(identity.Roles, required) {
				userRoles := identity.Roles
				if userRoles == nil {
					userRoles = []string{}
				}
				apierr.New(ctx, apierr.CodeInsufficientRoles, "Insufficient permissions").
					WithDetails(map[string]any{
						"required_roles": required,
						"user_roles":     userRoles,
					}).
					Render(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
