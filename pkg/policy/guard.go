package policy

import (
	"net/http"

	"github.com/dmitrymomot/blogkit/pkg/authn"
	"github.com/dmitrymomot/blogkit/pkg/feature"
	"github.com/dmitrymomot/blogkit/pkg/rbac"

	"github.com/go-chi/chi/v5"
)

// Guard assembles per-endpoint gate chains from a shared token validator
// and feature provider.
type Guard struct {
	validator authn.TokenValidator
	features  feature.Provider
}

// NewGuard creates a guard. Both collaborators are required even when some
// endpoints use neither: policies change, wiring should not have to.
func NewGuard(validator authn.TokenValidator, features feature.Provider) (*Guard, error) {
	if validator == nil {
		return nil, ErrMissingValidator
	}
	if features == nil {
		return nil, ErrMissingFeatures
	}
	return &Guard{validator: validator, features: features}, nil
}

// Protect returns the gate chain for an endpoint, in fixed order:
// authentication, then role authorization, then the feature gate. Later
// gates read context the earlier ones establish, so the order is part of
// the contract. The result plugs straight into chi:
//
//	r.With(guard.Protect(ep)...).Post("/api/articles", createArticle)
func (g *Guard) Protect(ep Endpoint) chi.Middlewares {
	return chi.Middlewares{
		authn.Middleware(g.validator, authn.WithPublic(ep.Public)),
		rbac.RequireRoles(ep.Roles...),
		feature.RequireFeature(g.features, ep.Feature),
	}
}

// Handler wraps a handler in the endpoint's gate chain, for use outside a
// chi router.
func (g *Guard) Handler(ep Endpoint, next http.Handler) http.Handler {
	return g.Protect(ep).Handler(next)
}
