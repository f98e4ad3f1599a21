// Package account exposes identity introspection for authenticated
// callers. GET /users/me echoes the token identity and the tenant the
// request resolved to, which makes it the standard debugging endpoint for
// token and tenant wiring.
package account
