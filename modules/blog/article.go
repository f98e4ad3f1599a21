package blog

import (
	"time"

	"github.com/google/uuid"
)

// Article is a single piece of content scoped to a tenant. Unpublished
// articles are drafts, visible only to editorial roles.
type Article struct {
	ID        uuid.UUID `json:"id"`
	TenantID  string    `json:"tenant_id,omitempty"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type createArticleRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

// updateArticleRequest is a partial update; nil fields stay unchanged. The
// slug is deliberately stable across title edits so published URLs never
// break.
type updateArticleRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}

type articleListResponse struct {
	Articles []Article `json:"articles"`
}

type reportsResponse struct {
	Reports contentReport `json:"reports"`
}

type contentReport struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Drafts    int `json:"drafts"`
}
