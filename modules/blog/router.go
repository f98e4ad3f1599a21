package blog

import (
	"log/slog"

	"github.com/dmitrymomot/blogkit/pkg/policy"

	"github.com/go-chi/chi/v5"
)

// Policies is the access policy for every blog route, keyed by the
// externally visible method and path. Reading is public; writing demands
// editorial roles and the article-publishing flag; the reports view is
// behind the beta-reports flag.
func Policies() map[string]policy.Endpoint {
	return map[string]policy.Endpoint{
		"GET /api/public/articles":  {Public: true},
		"GET /api/articles":         {Public: true},
		"GET /api/articles/{slug}":  {Public: true},
		"POST /api/articles":        {Roles: []string{"editor", "admin"}, Feature: "article-publishing"},
		"PUT /api/articles/{id}":    {Roles: []string{"editor", "admin"}},
		"DELETE /api/articles/{id}": {Roles: []string{"admin"}},
		"GET /api/reports":          {Roles: []string{"admin"}, Feature: "beta-reports"},
	}
}

// RouterConfig carries the collaborators the blog module needs.
type RouterConfig struct {
	Store Store
	Log   *slog.Logger
	Guard *policy.Guard
}

// Router builds the blog module router, meant to be mounted under /api.
// Each route is wrapped in the gate chain its policy prescribes.
func Router(cfg RouterConfig) (chi.Router, error) {
	table, err := policy.NewTable(Policies())
	if err != nil {
		return nil, err
	}

	svc := NewService(cfg.Store, cfg.Log)
	guard := cfg.Guard

	r := chi.NewRouter()
	r.With(guard.Protect(table.Endpoint("GET /api/public/articles"))...).
		Get("/public/articles", svc.handlePublicList)
	r.With(guard.Protect(table.Endpoint("GET /api/articles"))...).
		Get("/articles", svc.handleList)
	r.With(guard.Protect(table.Endpoint("GET /api/articles/{slug}"))...).
		Get("/articles/{slug}", svc.handleGet)
	r.With(guard.Protect(table.Endpoint("POST /api/articles"))...).
		Post("/articles", svc.handleCreate)
	r.With(guard.Protect(table.Endpoint("PUT /api/articles/{id}"))...).
		Put("/articles/{id}", svc.handleUpdate)
	r.With(guard.Protect(table.Endpoint("DELETE /api/articles/{id}"))...).
		Delete("/articles/{id}", svc.handleDelete)
	r.With(guard.Protect(table.Endpoint("GET /api/reports"))...).
		Get("/reports", svc.handleReports)

	return r, nil
}
