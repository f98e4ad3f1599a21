package account_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrymomot/blogkit/modules/account"
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

const accountTestSecret = "account-router-test-secret"

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	validator, err := authn.NewJWTValidator(accountTestSecret)
	require.NoError(t, err)

	features, err := feature.NewStaticProvider(nil)
	require.NoError(t, err)

	guard, err := policy.NewGuard(validator, features)
	require.NoError(t, err)

	users, err := account.Router(account.RouterConfig{Guard: guard})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(tenant.Middleware(tenant.NewResolver("")))
	r.Mount("/api/users", users)
	return r
}

func issueToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	claims := authn.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		Email:    "me@example.com",
		Roles:    []string{"editor"},
		TenantID: "acme",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(accountTestSecret))
	require.NoError(t, err)
	return token
}

func TestMe(t *testing.T) {
	t.Parallel()

	t.Run("echoes identity and resolved tenant", func(t *testing.T) {
		t.Parallel()
		router := newRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, time.Hour))
		req.Header.Set(tenant.Header, "globex")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			User struct {
				UserID   string   `json:"user_id"`
				Email    string   `json:"email"`
				Roles    []string `json:"roles"`
				TenantID string   `json:"tenant_id"`
			} `json:"user"`
			Tenant struct {
				TenantID string `json:"tenant_id"`
				Source   string `json:"source"`
			} `json:"tenant"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, "user-42", resp.User.UserID)
		assert.Equal(t, "me@example.com", resp.User.Email)
		assert.Equal(t, []string{"editor"}, resp.User.Roles)
		assert.Equal(t, "acme", resp.User.TenantID, "identity tenant comes from the token")
		assert.Equal(t, "globex", resp.Tenant.TenantID, "request tenant comes from the header")
		assert.Equal(t, "header", resp.Tenant.Source)
	})

	t.Run("omits tenant when none resolved", func(t *testing.T) {
		t.Parallel()
		router := newRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, time.Hour))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
		assert.Contains(t, raw, "user")
		assert.NotContains(t, raw, "tenant")
	})

	t.Run("rejects anonymous callers", func(t *testing.T) {
		t.Parallel()
		router := newRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var envelope struct {
			Error struct {
				Code      string `json:"code"`
				RequestID string `json:"request_id"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, "UNAUTHORIZED", envelope.Error.Code)
		assert.Equal(t, rec.Header().Get(requestid.Header), envelope.Error.RequestID)
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		t.Parallel()
		router := newRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, -time.Minute))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var envelope struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, "TOKEN_EXPIRED", envelope.Error.Code)
		assert.Equal(t, "Token has expired", envelope.Error.Message)
	})
}
