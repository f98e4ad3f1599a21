package policy

import (
	"errors"
	"fmt"
)

// Endpoint is the declarative access policy of a single route. The zero
// value is the strictest useful policy: authentication required, no role
// or feature constraints.
type Endpoint struct {
	// Public endpoints skip authentication entirely.
	Public bool

	// Roles is an OR-requirement: any one listed role grants access.
	// Empty means any authenticated caller.
	Roles []string

	// Feature gates the route behind a feature flag; empty means always on.
	Feature string
}

// Table maps route identifiers (e.g. "POST /api/articles") to endpoint
// policies. It replaces per-handler annotations with one explicit,
// reviewable policy listing, resolved before requests are served.
type Table struct {
	endpoints map[string]Endpoint
}

// NewTable validates and freezes a policy listing. A public endpoint with
// a role requirement is rejected: the role gate demands an authenticated
// identity that a public route never establishes, so such a policy would
// lock the route shut.
func NewTable(endpoints map[string]Endpoint) (*Table, error) {
	frozen := make(map[string]Endpoint, len(endpoints))
	for route, ep := range endpoints {
		if ep.Public && len(ep.Roles) > 0 {
			return nil, errors.Join(ErrInvalidEndpoint,
				fmt.Errorf("route %q is public but requires roles %v", route, ep.Roles))
		}
		frozen[route] = ep
	}
	return &Table{endpoints: frozen}, nil
}

// Endpoint returns the policy registered for the route. Unknown routes get
// the zero policy, which still requires authentication.
func (t *Table) Endpoint(route string) Endpoint {
	return t.endpoints[route]
}
