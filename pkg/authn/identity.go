package authn

// Identity is the authenticated caller attached to the request context by
// the authentication gate. Roles keep the order they appeared in the
// credential; authorization failures echo them verbatim.
type Identity struct {
	UserID   string   `json:"user_id"`
	Email    string   `json:"email,omitempty"`
	Roles    []string `json:"roles,omitempty"`
	TenantID string   `json:"tenant_id,omitempty"`
}

// Field returns one named identity field. It backs the generic
// identity-accessor surface handlers use when they need a single value
// instead of the whole identity.
func (id *Identity) Field(name string) (any, bool) {
	switch name {
	case "user_id":
		return id.UserID, true
	case "email":
		return id.Email, true
	case "roles":
		return id.Roles, true
	case "tenant_id":
		return id.TenantID, true
	}
	return nil, false
}
