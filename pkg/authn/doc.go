// Package authn provides the authentication gate of the request pipeline:
// bearer-credential extraction, JWT validation, and typed rejection of
// failed requests.
//
// # Gate behavior
//
// Endpoints marked public (see WithPublic) bypass the gate unconditionally.
// For everything else the gate extracts the bearer token and delegates to a
// TokenValidator, then maps the outcome:
//
//	validator signalled expiry        → 401 TOKEN_EXPIRED "Token has expired"
//	validator signalled malformed/bad → 401 INVALID_TOKEN "Invalid token"
//	validator signalled no credential → 401 TOKEN_MISSING "Authentication token is required"
//	any other failure, or no identity → 401 UNAUTHORIZED "Unauthorized access"
//
// When several signals coincide (an expired token still parses to an
// identity, for example) the precedence is fixed: TOKEN_EXPIRED beats
// INVALID_TOKEN beats TOKEN_MISSING beats UNAUTHORIZED. A request with no
// Authorization header produces neither an error nor an identity, so it is
// rejected as UNAUTHORIZED, not TOKEN_MISSING — the missing-token kind is
// reserved for validators that explicitly report an absent credential.
//
// On success the caller Identity is attached to the request context;
// handlers read it back with FromContext or fetch a single field with
// FieldFromContext.
//
// # Validation
//
// JWTValidator verifies HS256 tokens with a shared secret using
// github.com/golang-jwt/jwt/v5, enforcing the algorithm allowlist and
// translating the library's failure taxonomy onto the package sentinels.
// Custom credential mechanisms implement TokenValidator and reuse the same
// gate and rejection mapping.
package authn
