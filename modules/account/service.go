package account

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/blogkit/pkg/apierr"
	"github.com/dmitrymomot/blogkit/pkg/authn"
	"github.com/dmitrymomot/blogkit/pkg/tenant"
)

// Service implements the account handlers. The gate chain guarantees an
// identity is present before handleMe runs; the in-handler check is the
// standard guard against the route being mounted without its policy.
type Service struct{}

// NewService creates the account service.
func NewService() *Service {
	return &Service{}
}

func (s *Service) handleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := authn.FromContext(ctx)
	if !ok {
		apierr.New(ctx, apierr.CodeUserNotFound, "User not Authenticated").Render(w)
		return
	}

	resp := profileResponse{User: identity}
	if info, ok := tenant.FromContext(ctx); ok {
		resp.Tenant = info
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}
