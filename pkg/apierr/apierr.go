package apierr

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/blogkit/pkg/requestid"
)

// Code identifies the category of a request rejection. Codes are part of
// the wire contract: clients branch on them, so their literal values are
// stable.
type Code string

const (
	CodeBadRequest        Code = "BAD_REQUEST"
	CodeTokenExpired      Code = "TOKEN_EXPIRED"
	CodeTokenInvalid      Code = "INVALID_TOKEN"
	CodeTokenMissing      Code = "TOKEN_MISSING"
	CodeUnauthorized      Code = "UNAUTHORIZED"
	CodeUserNotFound      Code = "USER_NOT_FOUND"
	CodeInsufficientRoles Code = "INSUFFICIENT_ROLES"
	CodeFeatureDisabled   Code = "FEATURE_DISABLED"
	CodeNotFound          Code = "NOT_FOUND"
	CodeInternal          Code = "INTERNAL_ERROR"
)

// fallbackRequestID is used when a rejection is built from a context that
// never passed through the request-ID middleware.
const fallbackRequestID = "no-request-id"

var statusByCode = map[Code]int{
	CodeBadRequest:        http.StatusBadRequest,
	CodeTokenExpired:      http.StatusUnauthorized,
	CodeTokenInvalid:      http.StatusUnauthorized,
	CodeTokenMissing:      http.StatusUnauthorized,
	CodeUnauthorized:      http.StatusUnauthorized,
	CodeUserNotFound:      http.StatusUnauthorized,
	CodeInsufficientRoles: http.StatusForbidden,
	CodeFeatureDisabled:   http.StatusForbidden,
	CodeNotFound:          http.StatusNotFound,
	CodeInternal:          http.StatusInternalServerError,
}

// StatusFor returns the HTTP status a code maps to. Unknown codes map to
// 500 so a miswired gate fails loudly rather than leaking a 200.
func StatusFor(code Code) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error is a typed request rejection. It carries everything a client needs
// to react programmatically: a stable code, a human-readable message, the
// request correlation ID, and optional structured details.
type Error struct {
	Status    int            `json:"-"`
	Code      Code           `json:"code"`
	Message   string         `json:"message"`
	RequestID string         `json:"request_id"`
	Details   map[string]any `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// New builds a rejection for the given code, resolving the correlation ID
// from ctx. Requests that never passed the request-ID middleware get the
// "no-request-id" placeholder so the field is always present.
func New(ctx context.Context, code Code, message string) *Error {
	requestID := requestid.FromContext(ctx)
	if requestID == "" {
		requestID = fallbackRequestID
	}
	return &Error{
		Status:    StatusFor(code),
		Code:      code,
		Message:   message,
		RequestID: requestID,
	}
}

// WithDetails attaches structured details to the rejection and returns it
// for chaining.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

type envelope struct {
	Error *Error `json:"error"`
}

// Render writes the rejection as a JSON response and ends the request.
// The body is wrapped in an "error" envelope so success and failure
// payloads never share a shape.
func (e *Error) Render(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(envelope{Error: e})
}
