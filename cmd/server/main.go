package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dmitrymomot/blogkit/modules/account"
	"github.com/dmitrymomot/blogkit/modules/blog"
	"github.com/dmitrymomot/blogkit/pkg/authn"
	"github.com/dmitrymomot/blogkit/pkg/clientip"
	"github.com/dmitrymomot/blogkit/pkg/config"
	"github.com/dmitrymomot/blogkit/pkg/feature"
	"github.com/dmitrymomot/blogkit/pkg/httplog"
	"github.com/dmitrymomot/blogkit/pkg/httpserver"
	"github.com/dmitrymomot/blogkit/pkg/logger"
	"github.com/dmitrymomot/blogkit/pkg/policy"
	"github.com/dmitrymomot/blogkit/pkg/requestid"
	"github.com/dmitrymomot/blogkit/pkg/tenant"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

type appConfig struct {
	AppEnv  string `env:"APP_ENV" envDefault:"development"` // AppEnv selects log format and level (development, staging, production).
	AppName string `env:"APP_NAME" envDefault:"blogkit"`    // AppName is stamped on every log record.

	JWTSecret        string `env:"JWT_SECRET,required"` // JWTSecret signs and verifies access tokens.
	DefaultTenantID  string `env:"DEFAULT_TENANT_ID"`   // DefaultTenantID is the fallback tenant; empty disables the fallback.
	FeatureFlagsFile string `env:"FEATURE_FLAGS_FILE"`  // FeatureFlagsFile points at the YAML flag set; empty means no flags.

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","` // AllowedOrigins is the CORS origin allowlist.
}

func main() {
	ctx := context.Background()

	// .env files are a local-development convenience; already-set process
	// env always wins over file values.
	_ = config.LoadEnv()

	var cfg appConfig
	config.MustLoad(&cfg)
	var srvCfg httpserver.Config
	config.MustLoad(&srvCfg)

	log := logger.New(
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			tenant.LoggerExtractor(),
			authn.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	router, err := buildRouter(ctx, cfg, log)
	if err != nil {
		log.Error("startup failed", logger.Error(err))
		os.Exit(1)
	}

	srv := httpserver.NewFromConfig(srvCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("server starting",
				slog.String("addr", srvCfg.Addr),
				slog.String("env", cfg.AppEnv),
			)
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("server stopped")
		}),
	)
	if err := srv.Run(ctx, router); err != nil {
		log.Error("server failed", logger.Error(err))
		os.Exit(1)
	}
}

// buildRouter assembles the middleware pipeline and mounts the API modules.
// Order matters: the request ID must exist before logging, and the tenant
// must be resolved before any feature gate consults it.
func buildRouter(ctx context.Context, cfg appConfig, log *slog.Logger) (chi.Router, error) {
	validator, err := authn.NewJWTValidator(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	flags := defaultFlags()
	if cfg.FeatureFlagsFile != "" {
		if flags, err = feature.LoadFile(cfg.FeatureFlagsFile); err != nil {
			return nil, err
		}
	}
	features, err := feature.NewStaticProvider(flags)
	if err != nil {
		return nil, err
	}

	guard, err := policy.NewGuard(validator, features)
	if err != nil {
		return nil, err
	}

	store := blog.NewMemoryStore()
	if err := seedArticles(ctx, store); err != nil {
		return nil, err
	}

	articles, err := blog.Router(blog.RouterConfig{
		Store: store,
		Log:   log,
		Guard: guard,
	})
	if err != nil {
		return nil, err
	}
	users, err := account.Router(account.RouterConfig{Guard: guard})
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", requestid.Header, tenant.Header},
		ExposedHeaders: []string{requestid.Header, tenant.Header},
		MaxAge:         300,
	}))
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(httplog.Middleware(log))
	r.Use(chimw.Recoverer)
	// Default exclusions keep /health and /api/public tenant-free.
	r.Use(tenant.Middleware(tenant.NewResolver(cfg.DefaultTenantID)))

	r.Get("/health", httpserver.HealthCheckHandler(ctx, log))

	r.Route("/api", func(api chi.Router) {
		api.Mount("/users", users)
		api.Mount("/", articles)
	})

	return r, nil
}

// defaultFlags keeps the demo server usable without a flag file:
// publishing and the reports preview are on for every tenant.
func defaultFlags() []feature.Flag {
	return []feature.Flag{
		{Name: "article-publishing", Enabled: true},
		{Name: "beta-reports", Enabled: true},
	}
}

// seedArticles fills the in-memory store with demo content so the API
// answers immediately after boot.
func seedArticles(ctx context.Context, store blog.Store) error {
	now := time.Now().UTC()
	seed := []*blog.Article{
		{
			ID:        uuid.New(),
			TenantID:  "acme",
			Title:     "Welcome to blogkit",
			Slug:      "welcome-to-blogkit",
			Content:   "A short tour of the request pipeline serving this article.",
			AuthorID:  "demo-editor",
			Published: true,
			CreatedAt: now.Add(-time.Hour),
			UpdatedAt: now.Add(-time.Hour),
		},
		{
			ID:        uuid.New(),
			TenantID:  "acme",
			Title:     "Roadmap",
			Slug:      "roadmap",
			Content:   "Draft notes, visible to editorial roles only.",
			AuthorID:  "demo-editor",
			Published: false,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for _, a := range seed {
		if err := store.Create(ctx, a); err != nil {
			return err
		}
	}
	return nil
}
