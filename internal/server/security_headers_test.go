package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_SecurityHeaders(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		headers    map[string]string
		wantStatus int
	}{
		{"public health check", http.MethodGet, "/healthz", nil, http.StatusOK},
		{"rejected without key", http.MethodGet, "/api/recipes", nil, http.StatusUnauthorized},
		{"admin without admin key", http.MethodGet, "/api/admin/cache/stats", map[string]string{HeaderAPIKey: testAPIKey}, http.StatusForbidden},
		{"unknown route", http.MethodGet, "/nowhere", map[string]string{HeaderAPIKey: testAPIKey}, http.StatusNotFound},
	}

	want := map[string]string{
		HeaderContentType:    HeaderValueNoSniff,
		HeaderFrameOptions:   HeaderValueSameOrigin,
		HeaderXSSProtection:  HeaderValueXSSBlock,
		HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
	}

	h := newTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			for header, value := range want {
				assert.Equal(t, value, rec.Header().Get(header), header)
			}
		})
	}
}
