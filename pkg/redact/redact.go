package redact

import "reflect"

// Redacted is the placeholder written over the value of any sensitive key.
const Redacted = "[REDACTED]"

// circularKey marks a mapping that was already on the recursion path.
const circularKey = "[Circular]"

// sensitiveKeys are matched case-sensitively and exactly. "Password" or
// "TOKEN" do not match; the set mirrors the field names the API actually
// uses, not a heuristic.
var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"token":         {},
	"secret":        {},
	"authorization": {},
	"creditCard":    {},
	"cvv":           {},
}

// Sanitize returns a copy of value safe for logging. Only map[string]any
// values are rewritten: sensitive keys are replaced with Redacted and
// nested maps are sanitized recursively. Everything else, including slices
// and their elements, passes through unchanged, so a sensitive key inside
// an object nested under an array index is NOT redacted. That asymmetry is
// kept for wire-log compatibility; treat it as a known leak risk when
// logging array-heavy payloads.
//
// Self-referential structures terminate: a map already on the current
// recursion path is replaced with {"[Circular]": true}. The input is never
// mutated.
func Sanitize(value any) any {
	m, ok := value.(map[string]any)
	if !ok {
		return value
	}
	return sanitizeMap(m, make(map[uintptr]struct{}))
}

// sanitizeMap copies m with sensitive values masked. path holds the map
// identities of the current recursion branch only; entries are removed on
// the way back up so a map shared by sibling keys (a DAG, not a cycle) is
// sanitized normally in both places.
func sanitizeMap(m map[string]any, path map[uintptr]struct{}) map[string]any {
	ptr := reflect.ValueOf(m).Pointer()
	path[ptr] = struct{}{}
	defer delete(path, ptr)

	out := make(map[string]any, len(m))
	for key, val := range m {
		if _, sensitive := sensitiveKeys[key]; sensitive {
			out[key] = Redacted
			continue
		}
		nested, ok := val.(map[string]any)
		if !ok {
			out[key] = val
			continue
		}
		if _, onPath := path[reflect.ValueOf(nested).Pointer()]; onPath {
			out[key] = map[string]any{circularKey: true}
			continue
		}
		out[key] = sanitizeMap(nested, path)
	}
	return out
}
