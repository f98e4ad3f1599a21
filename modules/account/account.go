package account

import (
	"github.com/dmitrymomot/blogkit/pkg/authn"
	"github.com/dmitrymomot/blogkit/pkg/tenant"
)

// profileResponse echoes the caller's authenticated identity together with
// the tenant the request resolved to. The two can differ: the identity's
// tenant comes from the token claims, the request tenant from the header
// or subdomain.
type profileResponse struct {
	User   *authn.Identity `json:"user"`
	Tenant *tenant.Info    `json:"tenant,omitempty"`
}
