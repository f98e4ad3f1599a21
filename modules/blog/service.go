package blog

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/blogkit/pkg/apierr"
	"github.com/dmitrymomot/blogkit/pkg/authn"
	"github.com/dmitrymomot/blogkit/pkg/binder"
	"github.com/dmitrymomot/blogkit/pkg/logger"
	"github.com/dmitrymomot/blogkit/pkg/rbac"
	"github.com/dmitrymomot/blogkit/pkg/slug"
	"github.com/dmitrymomot/blogkit/pkg/tenant"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const slugMaxLength = 80

// editorialRoles may see drafts and edit content.
var editorialRoles = []string{"editor", "admin"}

// Service implements the article API handlers. Access control happens in
// the gate chain before any handler runs; handlers only decide visibility
// details such as hiding drafts from anonymous readers.
type Service struct {
	store Store
	log   *slog.Logger
}

// NewService creates the article service.
func NewService(store Store, log *slog.Logger) *Service {
	return &Service{store: store, log: log}
}

// handlePublicList serves the tenant-less public index. The path is on the
// tenant resolver's excluded list, so no tenant context exists here and the
// listing spans all tenants.
func (s *Service) handlePublicList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	articles, err := s.store.ListPublic(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "listing public articles failed", logger.Error(err))
		apierr.New(ctx, apierr.CodeInternal, "Unable to list articles").Render(w)
		return
	}

	respondJSON(w, http.StatusOK, articleListResponse{Articles: articles})
}

func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID, _ := tenant.IDFromContext(ctx)

	articles, err := s.store.List(ctx, tenantID)
	if err != nil {
		s.log.ErrorContext(ctx, "listing articles failed", logger.Error(err))
		apierr.New(ctx, apierr.CodeInternal, "Unable to list articles").Render(w)
		return
	}

	if rbac.Check(ctx, editorialRoles...) != nil {
		articles = publishedOnly(articles)
	}

	respondJSON(w, http.StatusOK, articleListResponse{Articles: articles})
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID, _ := tenant.IDFromContext(ctx)

	article, err := s.store.GetBySlug(ctx, tenantID, chi.URLParam(r, "slug"))
	if err != nil {
		apierr.New(ctx, apierr.CodeNotFound, "Article not found").Render(w)
		return
	}

	// Drafts stay invisible to readers without an editorial role.
	if !article.Published && rbac.Check(ctx, editorialRoles...) != nil {
		apierr.New(ctx, apierr.CodeNotFound, "Article not found").Render(w)
		return
	}

	respondJSON(w, http.StatusOK, article)
}

func (s *Service) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createArticleRequest
	if err := binder.JSON(r, &req); err != nil {
		apierr.New(ctx, apierr.CodeBadRequest, "Invalid request body").Render(w)
		return
	}
	if req.Title == "" {
		apierr.New(ctx, apierr.CodeBadRequest, "Title is required").Render(w)
		return
	}

	identity, ok := authn.FromContext(ctx)
	if !ok {
		apierr.New(ctx, apierr.CodeUserNotFound, "User not Authenticated").Render(w)
		return
	}
	tenantID, _ := tenant.IDFromContext(ctx)

	now := time.Now().UTC()
	article := &Article{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Title:     req.Title,
		Slug:      slug.Make(req.Title, slug.MaxLength(slugMaxLength)),
		Content:   req.Content,
		AuthorID:  identity.UserID,
		Published: req.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.store.Create(ctx, article)
	if errors.Is(err, ErrSlugTaken) {
		// Same title as an existing article: retry once with a random
		// suffix instead of failing the request.
		article.Slug = slug.Make(req.Title, slug.MaxLength(slugMaxLength), slug.WithSuffix(6))
		err = s.store.Create(ctx, article)
	}
	if err != nil {
		s.log.ErrorContext(ctx, "creating article failed", logger.Error(err))
		apierr.New(ctx, apierr.CodeInternal, "Unable to create article").Render(w)
		return
	}

	respondJSON(w, http.StatusCreated, article)
}

func (s *Service) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID, _ := tenant.IDFromContext(ctx)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierr.New(ctx, apierr.CodeBadRequest, "Invalid article ID").Render(w)
		return
	}

	var req updateArticleRequest
	if err := binder.JSON(r, &req); err != nil {
		apierr.New(ctx, apierr.CodeBadRequest, "Invalid request body").Render(w)
		return
	}

	article, err := s.store.Get(ctx, tenantID, id)
	if err != nil {
		apierr.New(ctx, apierr.CodeNotFound, "Article not found").Render(w)
		return
	}

	if req.Title != nil {
		if *req.Title == "" {
			apierr.New(ctx, apierr.CodeBadRequest, "Title is required").Render(w)
			return
		}
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Published != nil {
		article.Published = *req.Published
	}
	article.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, article); err != nil {
		s.log.ErrorContext(ctx, "updating article failed", logger.Error(err))
		apierr.New(ctx, apierr.CodeInternal, "Unable to update article").Render(w)
		return
	}

	respondJSON(w, http.StatusOK, article)
}

func (s *Service) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID, _ := tenant.IDFromContext(ctx)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierr.New(ctx, apierr.CodeBadRequest, "Invalid article ID").Render(w)
		return
	}

	if err := s.store.Delete(ctx, tenantID, id); err != nil {
		apierr.New(ctx, apierr.CodeNotFound, "Article not found").Render(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID, _ := tenant.IDFromContext(ctx)

	articles, err := s.store.List(ctx, tenantID)
	if err != nil {
		s.log.ErrorContext(ctx, "building content report failed", logger.Error(err))
		apierr.New(ctx, apierr.CodeInternal, "Unable to build report").Render(w)
		return
	}

	report := contentReport{Total: len(articles)}
	for _, a := range articles {
		if a.Published {
			report.Published++
		} else {
			report.Drafts++
		}
	}

	respondJSON(w, http.StatusOK, reportsResponse{Reports: report})
}

func publishedOnly(articles []Article) []Article {
	visible := make([]Article, 0, len(articles))
	for _, a := range articles {
		if a.Published {
			visible = append(visible, a)
		}
	}
	return visible
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
