package authn

import "errors"

var (
	// ErrTokenExpired signals a credential that was valid but has expired.
	ErrTokenExpired = errors.New("authn: token expired")

	// ErrTokenInvalid signals a malformed credential or a bad signature.
	ErrTokenInvalid = errors.New("authn: invalid token")

	// ErrTokenMissing is the validator's explicit no-credential signal.
	ErrTokenMissing = errors.New("authn: no auth token")

	// ErrMissingSecret is returned when a validator is built without a
	// signing secret.
	ErrMissingSecret = errors.New("authn: missing signing secret")
)
