package rbac

import "errors"

var (
	// ErrNoIdentity is returned when a role check runs on a context without
	// an authenticated identity.
	ErrNoIdentity = errors.New("rbac: no authenticated identity in context")

	// ErrInsufficientRoles is returned when the identity holds none of the
	// required roles.
	ErrInsufficientRoles = errors.New("rbac: insufficient roles")
)
