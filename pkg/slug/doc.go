// Package slug converts article titles into URL-safe identifiers.
//
// Make lowercases the input, folds common Latin diacritics to ASCII, and
// collapses every other character run into a single hyphen:
//
//	slug.Make("Héllo, Wörld!")                  // "hello-world"
//	slug.Make("Long title", slug.MaxLength(6))  // "long-t"
//	slug.Make("My Post", slug.WithSuffix(6))    // "my-post-x7g3k2"
//
// WithSuffix appends random characters for collision avoidance when many
// articles share a title; the suffix counts against MaxLength.
package slug
