package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/time/rate"

	"github.com/popeskul/disparo-queue/internal/middleware"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRequestID(t *testing.T) {
	t.Run("generated", func(t *testing.T) {
		var seen string
		handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.GetRequestID(r.Context())
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("propagated from header", func(t *testing.T) {
		var seen string
		handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.GetRequestID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(middleware.RequestIDHeader, "upstream-id")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, "upstream-id", seen)
		assert.Equal(t, "upstream-id", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("unsafe header replaced", func(t *testing.T) {
		for _, raw := range []string{"line\nbreak", "tab\tinside", strings.Repeat("x", 129)} {
			var seen string
			handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = middleware.GetRequestID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header[middleware.RequestIDHeader] = []string{raw}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			_, err := uuid.Parse(seen)
			assert.NoError(t, err, "got %q for %q", seen, raw)
		}
	})

	t.Run("absent", func(t *testing.T) {
		assert.Empty(t, middleware.GetRequestID(context.Background()))
	})

	t.Run("helper", func(t *testing.T) {
		ctx := middleware.WithRequestID(context.Background(), "abc")
		assert.Equal(t, "abc", middleware.GetRequestID(ctx))
	})
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	handler := middleware.RequestID(middleware.Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("down"))
	})))

	req := httptest.NewRequest(http.MethodPost, "/disparos/process", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zap.ErrorLevel, entry.Level)

	fields := entry.ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "/disparos/process", fields["path"])
	assert.Equal(t, int64(http.StatusServiceUnavailable), fields["status"])
	assert.Equal(t, int64(4), fields["bytes"])
}

func TestRateLimiter(t *testing.T) {
	rl := middleware.NewRateLimiter(rate.Limit(1), 1)
	t.Cleanup(rl.Stop)

	handler := rl.Middleware()(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "127.0.0.1:1234"

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Same IP from another port shares the bucket.
	other := httptest.NewRequest(http.MethodGet, "/health", nil)
	other.RemoteAddr = "127.0.0.1:5678"
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, other)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, middleware.ErrorCodeRateLimitExceeded, decodeError(t, w)["error"])
	assert.Equal(t, "1", w.Header().Get("Retry-After"))

	stranger := httptest.NewRequest(http.MethodGet, "/health", nil)
	stranger.RemoteAddr = "10.0.0.9:1234"
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, stranger)
	assert.Equal(t, http.StatusOK, w.Code)

	time.Sleep(time.Second)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS(t *testing.T) {
	handler := middleware.CORS(middleware.DefaultCORSConfig())(okHandler)

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/disparos/process", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("no origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("subdomain wildcard", func(t *testing.T) {
		restricted := middleware.CORS(&middleware.CORSConfig{
			AllowedOrigins: []string{"https://*.example.com", "http://localhost:3000"},
		})(okHandler)

		tests := []struct {
			origin  string
			allowed bool
		}{
			{origin: "https://app.example.com", allowed: true},
			{origin: "https://A.B.Example.com", allowed: true},
			{origin: "http://localhost:3000", allowed: true},
			{origin: "https://example.com", allowed: false},
			{origin: "http://app.example.com", allowed: false},
			{origin: "https://app.example.com.evil.io", allowed: false},
		}

		for _, tt := range tests {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			restricted.ServeHTTP(w, req)

			if tt.allowed {
				assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"), tt.origin)
			} else {
				assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"), tt.origin)
			}
			assert.Equal(t, "Origin", w.Header().Get("Vary"), tt.origin)
		}
	})

	t.Run("origin not allowed", func(t *testing.T) {
		restricted := middleware.CORS(&middleware.CORSConfig{AllowedOrigins: []string{"https://app.example.com"}})(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		restricted.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRecovery(t *testing.T) {
	handler := middleware.Recovery(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	}))

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, middleware.ErrorCodeInternal, decodeError(t, w)["error"])
}

func TestTimeout(t *testing.T) {
	t.Run("completes in time", func(t *testing.T) {
		handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Custom", "yes")
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte("done"))
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "yes", w.Header().Get("X-Custom"))
		assert.Equal(t, "done", w.Body.String())
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		release := make(chan struct{})
		t.Cleanup(func() { close(release) })

		handler := middleware.Timeout(50 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
			_, _ = w.Write([]byte("late"))
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusRequestTimeout, w.Code)
		assert.Equal(t, middleware.ErrorCodeRequestTimeout, decodeError(t, w)["error"])
	})

	t.Run("disabled", func(t *testing.T) {
		handler := middleware.Timeout(0)(okHandler)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestTriggerAuth(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		method         string
		header         string
		expectedStatus int
	}{
		{name: "disabled", token: "", method: http.MethodPost, expectedStatus: http.StatusOK},
		{name: "valid token", token: "s3cret", method: http.MethodPost, header: "Bearer s3cret", expectedStatus: http.StatusOK},
		{name: "missing header", token: "s3cret", method: http.MethodPost, expectedStatus: http.StatusUnauthorized},
		{name: "wrong token", token: "s3cret", method: http.MethodPost, header: "Bearer nope", expectedStatus: http.StatusUnauthorized},
		{name: "wrong scheme", token: "s3cret", method: http.MethodPost, header: "Basic s3cret", expectedStatus: http.StatusUnauthorized},
		{name: "reads stay open", token: "s3cret", method: http.MethodGet, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.TriggerAuth(tt.token)(okHandler)

			req := httptest.NewRequest(tt.method, "/disparos/process", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, middleware.ErrorCodeUnauthorized, decodeError(t, w)["error"])
				assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestChain(t *testing.T) {
	chain, stop := middleware.Chain(&middleware.Config{
		Logger:         zap.NewNop(),
		CORS:           middleware.DefaultCORSConfig(),
		RateLimit:      rate.Limit(100),
		RateLimitBurst: 100,
		RequestTimeout: time.Second,
		TriggerToken:   "s3cret",
	})
	t.Cleanup(stop)

	var requestID string
	handler := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = middleware.GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/disparos/process", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, requestID)
	assert.Equal(t, requestID, w.Header().Get(middleware.RequestIDHeader))

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/disparos/process", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
