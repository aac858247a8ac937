package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	middleware := AuthMiddleware(apiKey, nil, NewSuspiciousActivityDetector())

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"Valid API Key", apiKey, "/api/v1/spins", http.StatusOK},
		{"Invalid API Key", "wrong-key", "/api/v1/spins", http.StatusUnauthorized},
		{"Missing API Key", "", "/api/v1/stats/alice", http.StatusUnauthorized},
		{"Public Path - Healthz", "", "/healthz", http.StatusOK},
		{"Public Path - Metrics", "", "/metrics", http.StatusOK},
		{"Oracle callback uses its own signature", "", PathOracleCallback, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()
			middleware(okHandler()).ServeHTTP(rec, req)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestSuspiciousActivityDetector_CountsPerIP(t *testing.T) {
	d := NewSuspiciousActivityDetector()
	for i := 1; i <= FailedAuthAlertCount; i++ {
		assert.Equal(t, i, d.RecordFailedAuth("10.0.0.1"))
	}
	assert.Equal(t, 1, d.RecordFailedAuth("10.0.0.2"))
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.5:4321"
	req.Header.Set(HeaderForwardedFor, "203.0.113.7, 198.51.100.2")

	assert.Equal(t, "10.0.0.5", extractIP(req, nil), "untrusted peer cannot spoof")
	assert.Equal(t, "198.51.100.2", extractIP(req, []string{"10.0.0.5"}))
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 3)
	h := RateLimitMiddleware(nil, limiter)(okHandler())

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/spins", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do("192.168.1.100:1234"))
	}
	assert.Equal(t, http.StatusTooManyRequests, do("192.168.1.100:1234"))
	assert.Equal(t, http.StatusOK, do("192.168.1.101:1234"), "other clients keep their own bucket")

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodPost, PathOracleCallback, nil)
		req.RemoteAddr = "192.168.1.100:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "oracle callbacks are not limited")
	}
}

func TestSanitizeHeaders(t *testing.T) {
	h := http.Header{}
	h.Set(HeaderAPIKey, "secret")
	h.Set("X-Oracle-Signature", "abc")
	h.Set("Accept", "application/json")

	out := sanitizeHeaders(h)
	assert.Equal(t, RedactedValue, out.Get(HeaderAPIKey))
	assert.Equal(t, RedactedValue, out.Get("X-Oracle-Signature"))
	assert.Equal(t, "application/json", out.Get("Accept"))
}
