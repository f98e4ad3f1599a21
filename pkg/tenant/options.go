package tenant

import (
	"net/http"

	"github.com/dmitrymomot/blogkit/pkg/apierr"
)

// DefaultExcludedPaths skip tenant resolution entirely: health probes and
// endpoints that must work before any tenant exists. A path is excluded
// when it equals an entry or starts with the entry plus "/", so "/health"
// covers "/health/live" but not "/healthcheck".
var DefaultExcludedPaths = []string{"/health", "/api/public", "/api/auth/register"}

// ErrorHandler handles errors that occur during tenant resolution.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// config holds middleware configuration.
type config struct {
	errorHandler  ErrorHandler
	excludedPaths []string
}

// Option configures the middleware.
type Option func(*config)

// WithErrorHandler sets a custom error handler.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(c *config) {
		if handler != nil {
			c.errorHandler = handler
		}
	}
}

// WithExcludedPaths replaces the default excluded-path set.
func WithExcludedPaths(paths []string) Option {
	return func(c *config) {
		c.excludedPaths = paths
	}
}

// defaultErrorHandler converts a resolution failure into a BAD_REQUEST
// rejection. Errors with an empty message get a generic one so the client
// never receives a blank message field.
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	message := ""
	if err != nil {
		message = err.Error()
	}
	if message == "" {
		message = "Unknown error occurred"
	}
	apierr.New(r.Context(), apierr.CodeBadRequest, message).Render(w)
}
