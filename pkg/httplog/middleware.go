package httplog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/blogkit/pkg/clientip"
	"github.com/dmitrymomot/blogkit/pkg/requestid"
)

// Middleware logs every request with structured records: one informational
// record on entry, an optional debug record with the sanitized JSON body,
// and exactly one completion record whose level reflects the response
// status (5xx → error, 4xx → warn, otherwise info).
//
// It must run after the request-ID middleware so records carry the
// correlation id.
func Middleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()
			reqID := requestid.FromContext(ctx)

			userAgent := r.UserAgent()
			if userAgent == "" {
				userAgent = "unknown"
			}
			ip := clientip.FromContext(ctx)
			if ip == "" {
				ip = clientip.GetIP(r)
			}

			log.InfoContext(ctx, "request started",
				slog.String("request_id", reqID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("user_agent", userAgent),
				slog.String("ip", ip),
			)

			logBody(ctx, log, r, reqID)

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			level := slog.LevelInfo
			switch {
			case wrapped.statusCode >= http.StatusInternalServerError:
				level = slog.LevelError
			case wrapped.statusCode >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			log.LogAttrs(ctx, level, "request completed",
				slog.String("request_id", reqID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", wrapped.statusCode),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
		})
	}
}

// logBody emits a debug record with the sanitized request body. The body is
// fully read and restored so downstream decoding is unaffected. Only bodies
// that decode as JSON produce a record; anything else is passed through
// silently. When debug logging is off the body is not touched at all.
func logBody(ctx context.Context, log *slog.Logger, r *http.Request, reqID string) {
	if !log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	if r.Body == nil || r.Body == http.NoBody {
		return
	}

	raw, err := io.ReadAll(r.Body)
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return
	}

	log.DebugContext(ctx, "request body",
		slog.String("request_id", reqID),
		slog.String("body", FormatBody(decoded)),
	)
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Flush forwards Flush to the underlying ResponseWriter if it supports
// http.Flusher, preserving streaming support.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
