package feature

import "errors"

var (
	// ErrFlagNotFound indicates that the requested feature flag was not found.
	ErrFlagNotFound = errors.New("feature flag not found")

	// ErrInvalidFlag indicates that the provided flag configuration is invalid.
	ErrInvalidFlag = errors.New("invalid feature flag configuration")
)
