package feature

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/blogkit/pkg/apierr"
)

// RequireFeature guards an endpoint behind a feature flag. An empty flag
// name admits every request. Otherwise the request passes only when the
// provider reports the feature enabled for the current context; unknown
// flags and provider errors fail closed.
func RequireFeature(provider Provider, flagName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if flagName == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			enabled, err := provider.IsEnabled(ctx, flagName)
			if err != nil || !enabled {
				apierr.New(ctx, apierr.CodeFeatureDisabled, fmt.Sprintf("feature %q is disabled", flagName)).
					WithDetails(map[string]any{"feature": flagName}).
					Render(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
