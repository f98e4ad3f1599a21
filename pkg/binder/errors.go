package binder

import "errors"

var (
	// ErrUnsupportedMediaType is returned when the Content-Type header is
	// missing or is not application/json.
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
	// ErrInvalidBody is returned when the body cannot be decoded into the
	// target struct.
	ErrInvalidBody = errors.New("binder: invalid request body")
	// ErrBodyTooLarge is returned when the body exceeds MaxBodySize.
	ErrBodyTooLarge = errors.New("binder: request body too large")
)
