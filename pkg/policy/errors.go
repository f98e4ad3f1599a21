package policy

import "errors"

var (
	// ErrMissingValidator is returned when a guard is built without a token
	// validator.
	ErrMissingValidator = errors.New("policy: token validator is required")

	// ErrMissingFeatures is returned when a guard is built without a
	// feature provider.
	ErrMissingFeatures = errors.New("policy: feature provider is required")

	// ErrInvalidEndpoint is returned for contradictory endpoint policies,
	// such as a public endpoint that also requires roles.
	ErrInvalidEndpoint = errors.New("policy: invalid endpoint policy")
)
