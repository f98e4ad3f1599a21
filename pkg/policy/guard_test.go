package policy_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrymomot/blogkit/pkg/authn"
	"github.com/dmitrymomot/blogkit/pkg/feature"
	"github.com/dmitrymomot/blogkit/pkg/policy"
	"github.com/dmitrymomot/blogkit/pkg/requestid"
	"github.com/dmitrymomot/blogkit/pkg/tenant"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const guardTestSecret = "guard-test-secret"

type errorEnvelope struct {
	Error struct {
		Code      string         `json:"code"`
		Message   string         `json:"message"`
		RequestID string         `json:"request_id"`
		Details   map[string]any `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var envelope errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

// spyProvider records feature lookups so tests can prove the feature gate
// was (or was not) reached.
type spyProvider struct {
	inner feature.Provider
	calls int
}

func (s *spyProvider) IsEnabled(ctx context.Context, flagName string) (bool, error) {
	s.calls++
	return s.inner.IsEnabled(ctx, flagName)
}

func newGuard(t *testing.T) (*policy.Guard, *spyProvider) {
	t.Helper()
	validator, err := authn.NewJWTValidator(guardTestSecret)
	require.NoError(t, err)

	inner, err := feature.NewStaticProvider([]feature.Flag{
		{Name: "beta-reports", Enabled: true, DisabledTenants: []string{"tenant-123"}},
		{Name: "legacy-editor", Enabled: false},
	})
	require.NoError(t, err)

	spy := &spyProvider{inner: inner}
	guard, err := policy.NewGuard(validator, spy)
	require.NoError(t, err)
	return guard, spy
}

func issueToken(t *testing.T, roles ...string) string {
	t.Helper()
	claims := authn.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "user@example.com",
		Roles: roles,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(guardTestSecret))
	require.NoError(t, err)
	return token
}

func TestNewGuard(t *testing.T) {
	t.Parallel()
	validator, err := authn.NewJWTValidator(guardTestSecret)
	require.NoError(t, err)
	features, err := feature.NewStaticProvider(nil)
	require.NoError(t, err)

	_, err = policy.NewGuard(nil, features)
	assert.ErrorIs(t, err, policy.ErrMissingValidator)

	_, err = policy.NewGuard(validator, nil)
	assert.ErrorIs(t, err, policy.ErrMissingFeatures)

	guard, err := policy.NewGuard(validator, features)
	require.NoError(t, err)
	assert.NotNil(t, guard)
}

func TestGuardGateOrder(t *testing.T) {
	t.Parallel()

	t.Run("authentication rejects before roles and features", func(t *testing.T) {
		t.Parallel()
		guard, spy := newGuard(t)
		handler := guard.Handler(
			policy.Endpoint{Roles: []string{"editor"}, Feature: "legacy-editor"},
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler must not run")
			}),
		)

		req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		envelope := decodeError(t, rec)
		assert.Equal(t, "UNAUTHORIZED", envelope.Error.Code)
		assert.Zero(t, spy.calls)
	})

	t.Run("role rejection fires before the feature gate", func(t *testing.T) {
		t.Parallel()
		guard, spy := newGuard(t)
		handler := guard.Handler(
			policy.Endpoint{Roles: []string{"admin"}, Feature: "legacy-editor"},
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler must not run")
			}),
		)

		req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, "viewer"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		envelope := decodeError(t, rec)
		assert.Equal(t, "INSUFFICIENT_ROLES", envelope.Error.Code)
		assert.Zero(t, spy.calls)
	})

	t.Run("feature gate is last", func(t *testing.T) {
		t.Parallel()
		guard, spy := newGuard(t)
		handler := guard.Handler(
			policy.Endpoint{Roles: []string{"editor"}, Feature: "legacy-editor"},
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler must not run")
			}),
		)

		req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, "editor"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		envelope := decodeError(t, rec)
		assert.Equal(t, "FEATURE_DISABLED", envelope.Error.Code)
		assert.Equal(t, 1, spy.calls)
	})

	t.Run("all gates pass", func(t *testing.T) {
		t.Parallel()
		guard, _ := newGuard(t)
		var identity *authn.Identity
		handler := guard.Handler(
			policy.Endpoint{Roles: []string{"editor"}, Feature: "beta-reports"},
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				identity, _ = authn.FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}),
		)

		req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, "editor"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, identity)
		assert.Equal(t, "user-1", identity.UserID)
	})

	t.Run("public endpoint skips authentication", func(t *testing.T) {
		t.Parallel()
		guard, _ := newGuard(t)
		handler := guard.Handler(policy.Endpoint{Public: true}, http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) },
		))

		req := httptest.NewRequest(http.MethodGet, "/api/public/posts", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

// TestGuardFullPipeline drives the complete middleware stack the way the
// server wires it: request-id stamping, tenant resolution, then the
// per-endpoint gates.
func TestGuardFullPipeline(t *testing.T) {
	t.Parallel()

	newRouter := func(t *testing.T, guard *policy.Guard, ep policy.Endpoint, next http.HandlerFunc) chi.Router {
		t.Helper()
		r := chi.NewRouter()
		r.Use(requestid.Middleware)
		r.Use(tenant.Middleware(tenant.NewResolver("")))
		r.With(guard.Protect(ep)...).Get("/api/articles", next)
		return r
	}

	t.Run("anonymous request stops at authentication", func(t *testing.T) {
		t.Parallel()
		guard, spy := newGuard(t)
		router := newRouter(t, guard, policy.Endpoint{Roles: []string{"editor"}},
			func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler must not run")
			})

		req := httptest.NewRequest(http.MethodGet, "http://localhost/api/articles", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		envelope := decodeError(t, rec)
		assert.Equal(t, "UNAUTHORIZED", envelope.Error.Code)
		assert.Equal(t, "Unauthorized access", envelope.Error.Message)

		// The correlation id is generated even for rejected requests and
		// echoed both in the header and the error payload.
		generated := rec.Header().Get(requestid.Header)
		assert.NotEmpty(t, generated)
		assert.Equal(t, generated, envelope.Error.RequestID)

		// localhost has no subdomain and no default is configured.
		assert.Empty(t, rec.Header().Get(tenant.Header))
		assert.Zero(t, spy.calls)
	})

	t.Run("authorized tenant request flows through", func(t *testing.T) {
		t.Parallel()
		guard, _ := newGuard(t)
		var tenantID string
		router := newRouter(t, guard,
			policy.Endpoint{Roles: []string{"editor"}, Feature: "beta-reports"},
			func(w http.ResponseWriter, r *http.Request) {
				tenantID, _ = tenant.IDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

		req := httptest.NewRequest(http.MethodGet, "http://acme.example.com/api/articles", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, "editor"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "acme", tenantID)
		assert.Equal(t, "acme", rec.Header().Get(tenant.Header))
	})

	t.Run("excluded tenant is cut off at the feature gate", func(t *testing.T) {
		t.Parallel()
		guard, _ := newGuard(t)
		router := newRouter(t, guard,
			policy.Endpoint{Roles: []string{"editor"}, Feature: "beta-reports"},
			func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler must not run")
			})

		req := httptest.NewRequest(http.MethodGet, "http://example.com/api/articles", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, "editor"))
		req.Header.Set(tenant.Header, "tenant-123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		envelope := decodeError(t, rec)
		assert.Equal(t, "FEATURE_DISABLED", envelope.Error.Code)
		assert.Equal(t, map[string]any{"feature": "beta-reports"}, envelope.Error.Details)
	})
}
