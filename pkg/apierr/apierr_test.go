package apierr_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrymomot/blogkit/pkg/apierr"
	"github.com/dmitrymomot/blogkit/pkg/requestid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("resolves request ID from context", func(t *testing.T) {
		t.Parallel()
		ctx := requestid.WithContext(context.Background(), "req-123")
		e := apierr.New(ctx, apierr.CodeTokenExpired, "Token has expired")

		assert.Equal(t, apierr.CodeTokenExpired, e.Code)
		assert.Equal(t, "Token has expired", e.Message)
		assert.Equal(t, "req-123", e.RequestID)
		assert.Equal(t, http.StatusUnauthorized, e.Status)
	})

	t.Run("falls back to placeholder without request ID", func(t *testing.T) {
		t.Parallel()
		e := apierr.New(context.Background(), apierr.CodeUnauthorized, "Unauthorized access")
		assert.Equal(t, "no-request-id", e.RequestID)
	})

	t.Run("implements error", func(t *testing.T) {
		t.Parallel()
		e := apierr.New(context.Background(), apierr.CodeBadRequest, "bad input")
		assert.Equal(t, "BAD_REQUEST: bad input", e.Error())
	})
}

func TestStatusFor(t *testing.T) {
	t.Parallel()
	cases := []struct {
		code apierr.Code
		want int
	}{
		{apierr.CodeBadRequest, http.StatusBadRequest},
		{apierr.CodeTokenExpired, http.StatusUnauthorized},
		{apierr.CodeTokenInvalid, http.StatusUnauthorized},
		{apierr.CodeTokenMissing, http.StatusUnauthorized},
		{apierr.CodeUnauthorized, http.StatusUnauthorized},
		{apierr.CodeUserNotFound, http.StatusUnauthorized},
		{apierr.CodeInsufficientRoles, http.StatusForbidden},
		{apierr.CodeFeatureDisabled, http.StatusForbidden},
		{apierr.CodeNotFound, http.StatusNotFound},
		{apierr.CodeInternal, http.StatusInternalServerError},
		{apierr.Code("NO_SUCH_CODE"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, apierr.StatusFor(tc.code))
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()
	t.Run("writes enveloped JSON with mapped status", func(t *testing.T) {
		t.Parallel()
		ctx := requestid.WithContext(context.Background(), "req-9")
		rec := httptest.NewRecorder()

		apierr.New(ctx, apierr.CodeInsufficientRoles, "Insufficient permissions").
			WithDetails(map[string]any{
				"required_roles": []string{"admin"},
				"user_roles":     []string{"author"},
			}).
			Render(rec)

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

		var body struct {
			Error struct {
				Code      string         `json:"code"`
				Message   string         `json:"message"`
				RequestID string         `json:"request_id"`
				Details   map[string]any `json:"details"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "INSUFFICIENT_ROLES", body.Error.Code)
		assert.Equal(t, "Insufficient permissions", body.Error.Message)
		assert.Equal(t, "req-9", body.Error.RequestID)
		assert.Equal(t, []any{"admin"}, body.Error.Details["required_roles"])
		assert.Equal(t, []any{"author"}, body.Error.Details["user_roles"])
	})

	t.Run("omits details when absent", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		apierr.New(context.Background(), apierr.CodeTokenMissing, "Authentication token is required").Render(rec)

		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var raw map[string]map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
		_, hasDetails := raw["error"]["details"]
		assert.False(t, hasDetails)
		assert.Equal(t, "no-request-id", raw["error"]["request_id"])
	})
}
