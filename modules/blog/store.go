package blog

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Store is the persistence boundary for articles. Every operation is
// scoped to one tenant; an empty tenant ID addresses the default bucket
// used when no tenant was resolved for the deployment.
type Store interface {
	List(ctx context.Context, tenantID string) ([]Article, error)
	// ListPublic returns published articles across all tenants, for the
	// tenant-less public index.
	ListPublic(ctx context.Context) ([]Article, error)
	Get(ctx context.Context, tenantID string, id uuid.UUID) (*Article, error)
	GetBySlug(ctx context.Context, tenantID, slug string) (*Article, error)
	Create(ctx context.Context, article *Article) error
	Update(ctx context.Context, article *Article) error
	Delete(ctx context.Context, tenantID string, id uuid.UUID) error
}

// MemoryStore is an in-memory Store for development and tests. Values are
// copied on the way in and out so callers can never alias stored state.
type MemoryStore struct {
	mu       sync.RWMutex
	articles map[uuid.UUID]Article
}

// NewMemoryStore creates an empty in-memory article store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{articles: make(map[uuid.UUID]Article)}
}

// List returns the tenant's articles, newest first.
func (s *MemoryStore) List(_ context.Context, tenantID string) ([]Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Article, 0, len(s.articles))
	for _, a := range s.articles {
		if a.TenantID == tenantID {
			list = append(list, a)
		}
	}

	sortNewestFirst(list)
	return list, nil
}

// ListPublic returns every published article regardless of tenant,
// newest first.
func (s *MemoryStore) ListPublic(_ context.Context) ([]Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Article, 0, len(s.articles))
	for _, a := range s.articles {
		if a.Published {
			list = append(list, a)
		}
	}

	sortNewestFirst(list)
	return list, nil
}

// Get returns one article by ID within the tenant's scope.
func (s *MemoryStore) Get(_ context.Context, tenantID string, id uuid.UUID) (*Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.articles[id]
	if !ok || a.TenantID != tenantID {
		return nil, ErrArticleNotFound
	}
	return &a, nil
}

// GetBySlug returns one article by slug within the tenant's scope.
func (s *MemoryStore) GetBySlug(_ context.Context, tenantID, slug string) (*Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.TenantID == tenantID && a.Slug == slug {
			return &a, nil
		}
	}
	return nil, ErrArticleNotFound
}

// Create stores a new article. The slug must be unique within the tenant.
func (s *MemoryStore) Create(_ context.Context, article *Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slugInUse(article.TenantID, article.Slug, uuid.Nil) {
		return ErrSlugTaken
	}

	s.articles[article.ID] = *article
	return nil
}

// Update replaces a stored article matched by ID and tenant.
func (s *MemoryStore) Update(_ context.Context, article *Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.articles[article.ID]
	if !ok || current.TenantID != article.TenantID {
		return ErrArticleNotFound
	}
	if s.slugInUse(article.TenantID, article.Slug, article.ID) {
		return ErrSlugTaken
	}

	s.articles[article.ID] = *article
	return nil
}

// Delete removes an article within the tenant's scope.
func (s *MemoryStore) Delete(_ context.Context, tenantID string, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok || a.TenantID != tenantID {
		return ErrArticleNotFound
	}

	delete(s.articles, id)
	return nil
}

// slugInUse reports whether any article other than excludeID holds the
// slug within the tenant. Callers must hold the lock.
func (s *MemoryStore) slugInUse(tenantID, slug string, excludeID uuid.UUID) bool {
	for _, a := range s.articles {
		if a.TenantID == tenantID && a.Slug == slug && a.ID != excludeID {
			return true
		}
	}
	return false
}

func sortNewestFirst(list []Article) {
	slices.SortFunc(list, func(a, b Article) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		// Tie-break on ID so the order is stable for equal timestamps.
		return strings.Compare(b.ID.String(), a.ID.String())
	})
}
