package account

import (
	"github.com/dmitrymomot/blogkit/pkg/policy"

	"github.com/go-chi/chi/v5"
)

// Policies is the access policy for the account routes. The zero-value
// endpoint means authentication is required with no further role or
// feature demands.
func Policies() map[string]policy.Endpoint {
	return map[string]policy.Endpoint{
		"GET /api/users/me": {},
	}
}

// RouterConfig carries the collaborators the account module needs.
type RouterConfig struct {
	Guard *policy.Guard
}

// Router builds the account module router, meant to be mounted under
// /api/users.
func Router(cfg RouterConfig) (chi.Router, error) {
	table, err := policy.NewTable(Policies())
	if err != nil {
		return nil, err
	}

	svc := NewService()

	r := chi.NewRouter()
	r.With(cfg.Guard.Protect(table.Endpoint("GET /api/users/me"))...).
		Get("/me", svc.handleMe)

	return r, nil
}
