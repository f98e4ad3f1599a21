package httplog

import (
	"encoding/json"

	"github.com/dmitrymomot/blogkit/pkg/redact"
)

// serializationFallback replaces the whole body log line when the sanitized
// structure cannot be marshalled, so a hostile or self-referential payload
// can never break the logging path.
const serializationFallback = "[Unable to serialize - circular reference detected]"

// FormatBody sanitizes v and renders it as a compact JSON string for log
// records. Marshalling failures (cycles surviving array passthrough,
// unsupported value types) yield a fixed placeholder instead of an error.
func FormatBody(v any) string {
	sanitized := redact.Sanitize(v)
	b, err := json.Marshal(sanitized)
	if err != nil {
		return serializationFallback
	}
	return string(b)
}
