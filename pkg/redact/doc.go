// Package redact masks sensitive fields in request payloads before they
// reach the logs.
//
// The contract is deliberately small: Sanitize takes an arbitrary decoded
// JSON value and returns a copy in which every map key from a fixed,
// case-sensitive set (password, token, secret, authorization, creditCard,
// cvv) has its value replaced with the "[REDACTED]" marker. Nested maps
// are walked recursively; arrays and scalars pass through untouched.
//
// Cycles are tolerated rather than fatal: a mapping that references itself
// (directly or through intermediaries) is rendered as {"[Circular]": true}
// at the point of re-entry, so logging a self-referential structure can
// never hang or panic the request path.
//
// The redaction table is a plain constant set, not a tagging or metadata
// mechanism. Callers that need another field masked add it to the set.
package redact
