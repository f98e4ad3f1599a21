package slug

import (
	"crypto/rand"
	"strings"
	"unicode"
)

const separator = "-"

// Option configures slug generation.
type Option func(*config)

type config struct {
	maxLength    int
	suffixLength int
}

// MaxLength truncates the slug to at most n runes. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) { c.maxLength = n }
}

// WithSuffix appends a random alphanumeric suffix of the given length,
// separated by "-", to keep slugs unique across articles with the same
// title. The suffix counts against MaxLength.
func WithSuffix(length int) Option {
	return func(c *config) { c.suffixLength = length }
}

// Make converts a title into a lowercase URL-safe slug: letters and digits
// pass through, common Latin diacritics fold to ASCII, and every other run
// of characters collapses into a single "-".
func Make(s string, opts ...Option) string {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	var b strings.Builder
	b.Grow(len(s))

	lastWasSep := true // suppress a leading separator
	runeCount := 0

	for _, r := range s {
		if cfg.maxLength > 0 && runeCount >= cfg.maxLength {
			break
		}

		r = unicode.ToLower(r)
		if folded, ok := diacriticMap[r]; ok {
			r = folded
		}

		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastWasSep = false
			runeCount++
			continue
		}

		if !lastWasSep {
			if cfg.maxLength > 0 && runeCount+1 > cfg.maxLength {
				break
			}
			b.WriteString(separator)
			lastWasSep = true
			runeCount++
		}
	}

	result := strings.TrimSuffix(b.String(), separator)

	if cfg.suffixLength > 0 {
		result = appendSuffix(result, cfg.suffixLength, cfg.maxLength)
	}

	return result
}

// appendSuffix attaches a random suffix, shrinking the base slug when the
// combination would exceed maxLength.
func appendSuffix(base string, suffixLen, maxLength int) string {
	if maxLength > 0 && suffixLen > maxLength {
		suffixLen = maxLength
	}

	suffix := randomSuffix(suffixLen)

	if maxLength > 0 {
		baseMax := maxLength - suffixLen - len(separator)
		if baseMax <= 0 {
			return suffix
		}
		if runes := []rune(base); len(runes) > baseMax {
			base = strings.TrimSuffix(string(runes[:baseMax]), separator)
		}
	}

	if base == "" {
		return suffix
	}
	return base + separator + suffix
}

// diacriticMap folds common Latin diacritics to ASCII. Input runes are
// already lowercased when consulted, so only lowercase forms are listed.
var diacriticMap = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a', 'ā': 'a', 'ă': 'a', 'ą': 'a', 'æ': 'a',
	'ç': 'c', 'ć': 'c', 'č': 'c',
	'đ': 'd', 'ď': 'd',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e', 'ē': 'e', 'ė': 'e', 'ę': 'e', 'ě': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i', 'ī': 'i', 'į': 'i',
	'ł': 'l',
	'ñ': 'n', 'ń': 'n', 'ň': 'n',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', 'ø': 'o', 'ō': 'o', 'œ': 'o',
	'ř': 'r',
	'ś': 's', 'š': 's', 'ș': 's', 'ß': 's',
	'ť': 't', 'ț': 't',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u', 'ū': 'u', 'ů': 'u', 'ų': 'u',
	'ý': 'y', 'ÿ': 'y',
	'ź': 'z', 'ž': 'z', 'ż': 'z',
}

// randomSuffix returns length random characters from [a-z0-9].
func randomSuffix(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		// Deterministic fallback keeps Make total, if less unique.
		for i := range b {
			b[i] = charset[i%len(charset)]
		}
		return string(b)
	}

	for i := range b {
		b[i] = charset[b[i]%byte(len(charset))]
	}
	return string(b)
}
