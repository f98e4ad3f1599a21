// Package httplog provides the request-logging middleware of the pipeline.
//
// For every request it emits:
//
//   - an informational "request started" record with the correlation id,
//     method, path, user agent ("unknown" when the header is absent) and
//     client IP;
//   - an optional debug "request body" record containing the body after
//     sensitive-field redaction (see the redact package), emitted only when
//     the body is non-empty and decodes as JSON;
//   - exactly one "request completed" record once the response is
//     finalized, at error level for 5xx statuses, warn for 4xx, and info
//     otherwise, including the status code and elapsed milliseconds.
//
// The middleware never consumes the body destructively: it is read once and
// restored, so handler-side decoding behaves as if the middleware were not
// there. Payloads that defeat JSON serialization are logged as a fixed
// placeholder string rather than failing the request.
package httplog
