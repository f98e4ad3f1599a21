package slug_test

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dmitrymomot/blogkit/pkg/slug"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple title", input: "Hello World", want: "hello-world"},
		{name: "punctuation collapses", input: "Hello, World!", want: "hello-world"},
		{name: "consecutive specials", input: "a  --  b", want: "a-b"},
		{name: "leading and trailing junk", input: "  ?Hello?  ", want: "hello"},
		{name: "diacritics fold", input: "Héllo Wörld", want: "hello-world"},
		{name: "mixed case", input: "CamelCase Title", want: "camelcase-title"},
		{name: "digits pass through", input: "Top 10 Posts of 2025", want: "top-10-posts-of-2025"},
		{name: "cyrillic drops", input: "Привет world", want: "world"},
		{name: "empty", input: "", want: ""},
		{name: "only specials", input: "!!!", want: ""},
		{name: "polish", input: "Zażółć gęślą jaźń", want: "zazolc-gesla-jazn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, slug.Make(tt.input))
		})
	}
}

func TestMakeMaxLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", slug.Make("Hello World", slug.MaxLength(5)))
	assert.Equal(t, "hello-w", slug.Make("Hello World", slug.MaxLength(7)))
	// Truncation never leaves a trailing separator.
	assert.Equal(t, "hello", slug.Make("Hello World", slug.MaxLength(6)))
	assert.Equal(t, "hello-world", slug.Make("Hello World", slug.MaxLength(100)))
}

func TestMakeWithSuffix(t *testing.T) {
	t.Parallel()

	t.Run("appends random suffix", func(t *testing.T) {
		t.Parallel()
		got := slug.Make("My Post", slug.WithSuffix(6))
		assert.Regexp(t, regexp.MustCompile(`^my-post-[a-z0-9]{6}$`), got)
	})

	t.Run("suffixes differ across calls", func(t *testing.T) {
		t.Parallel()
		seen := make(map[string]struct{})
		for range 20 {
			seen[slug.Make("My Post", slug.WithSuffix(8))] = struct{}{}
		}
		assert.Greater(t, len(seen), 1, "random suffix should vary")
	})

	t.Run("respects max length", func(t *testing.T) {
		t.Parallel()
		got := slug.Make("A fairly long article title", slug.WithSuffix(6), slug.MaxLength(16))
		assert.LessOrEqual(t, utf8.RuneCountInString(got), 16)
		assert.True(t, strings.Contains(got, "-"), "base and suffix should be separated")
	})

	t.Run("suffix only when no room for base", func(t *testing.T) {
		t.Parallel()
		got := slug.Make("Title", slug.WithSuffix(6), slug.MaxLength(6))
		assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{6}$`), got)
	})
}
