package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrymomot/blogkit/pkg/clientip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIP(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name: "X-Forwarded-For takes priority",
			headers: map[string]string{
				"X-Forwarded-For": "198.51.100.178, 203.0.113.195",
				"X-Real-IP":       "192.168.1.1",
			},
			remoteAddr: "10.0.0.1:54321",
			expected:   "198.51.100.178",
		},
		{
			name: "first valid entry in X-Forwarded-For wins",
			headers: map[string]string{
				"X-Forwarded-For": "not-an-ip, 203.0.113.195",
			},
			remoteAddr: "10.0.0.1:54321",
			expected:   "203.0.113.195",
		},
		{
			name: "X-Real-IP when no forwarded header",
			headers: map[string]string{
				"X-Real-IP": "192.168.1.1",
			},
			remoteAddr: "10.0.0.1:54321",
			expected:   "192.168.1.1",
		},
		{
			name:       "RemoteAddr fallback",
			headers:    map[string]string{},
			remoteAddr: "127.0.0.1:8080",
			expected:   "127.0.0.1",
		},
		{
			name:       "RemoteAddr without port",
			headers:    map[string]string{},
			remoteAddr: "127.0.0.1",
			expected:   "127.0.0.1",
		},
		{
			name: "invalid headers fall back to RemoteAddr",
			headers: map[string]string{
				"X-Forwarded-For": "garbage",
				"X-Real-IP":       "also-garbage",
			},
			remoteAddr: "172.16.0.1:9000",
			expected:   "172.16.0.1",
		},
		{
			name: "IPv6 addresses are normalized",
			headers: map[string]string{
				"X-Forwarded-For": "2001:db8::1",
			},
			remoteAddr: "10.0.0.1:54321",
			expected:   "2001:db8::1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.expected, clientip.GetIP(req))
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()
	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		ctx := clientip.WithContext(context.Background(), "203.0.113.7")
		assert.Equal(t, "203.0.113.7", clientip.FromContext(ctx))
	})

	t.Run("empty when absent", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, clientip.FromContext(context.Background()))
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	handler := clientip.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "198.51.100.44", clientip.FromContext(r.Context()))
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.44")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
