// Package apierr defines the typed rejection envelope shared by every
// request gate in the pipeline.
//
// A rejection is identified by a stable Code (TOKEN_EXPIRED,
// INSUFFICIENT_ROLES, ...) that clients can branch on, carries a
// human-readable message, and always includes the request correlation ID
// so a failed call can be matched to its server-side log records. Gates
// construct rejections with New and terminate the request with Render:
//
//	apierr.New(r.Context(), apierr.CodeTokenMissing, "Authentication token is required").Render(w)
//
// The HTTP status is derived from the code: authentication failures map
// to 401, authorization failures to 403, and malformed requests to 400.
// Response bodies are wrapped in an "error" envelope:
//
//	{"error": {"code": "TOKEN_MISSING", "message": "...", "request_id": "..."}}
package apierr
