package middleware

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/migranthealth/careconnect/internal/domain/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapCache struct {
	data map[string][]byte
	ttl  int
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := c.data[key]; ok {
		return v, nil
	}
	return nil, providers.ErrCacheMiss
}

func (c *mapCache) Set(ctx context.Context, key string, value []byte, ttl int) error {
	c.data[key] = append([]byte(nil), value...)
	c.ttl = ttl
	return nil
}

func (c *mapCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func countingHandler(calls *int, status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
}

func TestCacheMiddleware(t *testing.T) {
	t.Run("second fixture read is a hit", func(t *testing.T) {
		cache := &mapCache{data: map[string][]byte{}}
		calls := 0
		handler := NewCacheMiddleware(cache, 60, nil).Middleware(countingHandler(&calls, http.StatusOK))

		first := httptest.NewRecorder()
		handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/doctors?sort=rating", nil))
		second := httptest.NewRecorder()
		handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/doctors?sort=rating", nil))

		assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
		assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.Equal(t, 1, calls)
		assert.Equal(t, 60, cache.ttl)
	})

	t.Run("query string is part of the key", func(t *testing.T) {
		cache := &mapCache{data: map[string][]byte{}}
		calls := 0
		handler := NewCacheMiddleware(cache, 60, nil).Middleware(countingHandler(&calls, http.StatusOK))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/records?category=lab", nil))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/records?category=imaging", nil))

		assert.Equal(t, 2, calls)
	})

	t.Run("user routes are not cached", func(t *testing.T) {
		cache := &mapCache{data: map[string][]byte{}}
		calls := 0
		handler := NewCacheMiddleware(cache, 60, nil).Middleware(countingHandler(&calls, http.StatusOK))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/users", nil))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/users", nil))

		assert.Equal(t, 2, calls)
		assert.Empty(t, cache.data)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		cache := &mapCache{data: map[string][]byte{}}
		calls := 0
		handler := NewCacheMiddleware(cache, 60, nil).Middleware(countingHandler(&calls, http.StatusNotFound))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/doctors/doc-99", nil))

		assert.Empty(t, cache.data)
	})

	t.Run("nil cache passes through", func(t *testing.T) {
		calls := 0
		handler := NewCacheMiddleware(nil, 60, nil).Middleware(countingHandler(&calls, http.StatusOK))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/patients", nil))

		assert.Equal(t, 1, calls)
		assert.Empty(t, w.Header().Get("X-Cache"))
	})
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	t.Run("listed origin is echoed", func(t *testing.T) {
		handler := CORSMiddleware([]string{"https://app.example.org"})(next)
		req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
		req.Header.Set("Origin", "https://app.example.org")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, "https://app.example.org", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", w.Header().Get("Vary"))
	})

	t.Run("unlisted origin gets no allow header", func(t *testing.T) {
		handler := CORSMiddleware([]string{"https://app.example.org"})(next)
		req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		called := false
		handler := CORSMiddleware([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
		req := httptest.NewRequest(http.MethodOptions, "/api/users", nil)
		req.Header.Set("Origin", "https://any.example")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.False(t, called)
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	handler := RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("secret detail")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestLoggingMiddleware_PassesStatus(t *testing.T) {
	handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/brew", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestObservabilityMiddleware_WithoutProviders(t *testing.T) {
	calls := 0
	handler := ObservabilityMiddleware(nil)(countingHandler(&calls, http.StatusCreated))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/users", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
}

func TestETag(t *testing.T) {
	calls := 0
	handler := ETag(countingHandler(&calls, http.StatusOK))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/doctors", nil))
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.Equal(t, `{"ok":true}`, first.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	req.Header.Set("If-None-Match", etag)
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)

	assert.Equal(t, http.StatusNotModified, second.Code)
	assert.Empty(t, second.Body.String())
}

func TestCompression(t *testing.T) {
	calls := 0
	handler := Compression(countingHandler(&calls, http.StatusOK))

	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	gz, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
}

func TestCacheControl(t *testing.T) {
	handler := CacheControl(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/doctors", nil))
	assert.Contains(t, w.Header().Get("Cache-Control"), "public")

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-cache")
}
