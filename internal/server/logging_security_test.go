package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs installs a debug-level text logger for the test and returns its buffer
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestLoggingMiddleware_RedactsCredentials(t *testing.T) {
	buf := captureLogs(t)

	req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Token mytoken")
	req.Header.Set("X-User-ID", "6f1c1b1e-58a1-4c55-9a0c-3a54f0e9a111")
	req.Header.Set("User-Agent", "RecipeClient/2.0")

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "mytoken")
	assert.Contains(t, out, RedactedValue)
	assert.Contains(t, out, "RecipeClient/2.0")
	assert.Contains(t, out, "request_id=")
}

func TestLoggingMiddleware_QuietPaths(t *testing.T) {
	buf := captureLogs(t)

	for _, path := range QuietPaths {
		rec := httptest.NewRecorder()
		loggingMiddleware(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Empty(t, buf.String())
}

func TestRedactHeaders_LeavesOriginalUntouched(t *testing.T) {
	h := http.Header{}
	h.Set(HeaderAPIKey, "k")
	h.Set("Accept", "text/plain")

	out := redactHeaders(h)

	assert.Equal(t, []string{RedactedValue}, out.Values(HeaderAPIKey))
	assert.Equal(t, "text/plain", out.Get("Accept"))
	assert.Equal(t, "k", h.Get(HeaderAPIKey))
}
