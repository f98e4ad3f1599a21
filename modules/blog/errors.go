package blog

import "errors"

var (
	// ErrArticleNotFound is returned when no article matches the lookup
	// within the tenant's scope.
	ErrArticleNotFound = errors.New("blog: article not found")

	// ErrSlugTaken is returned when another article in the same tenant
	// already uses the slug.
	ErrSlugTaken = errors.New("blog: slug already in use")
)
