package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/BrandishSpin_Go/internal/logger"
)

// AuthMiddleware validates the API key on everything but PublicPaths
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)

			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SuspiciousActivityDetector counts failed authentication per IP over a
// sliding window and raises an alert once an IP crosses the threshold.
type SuspiciousActivityDetector struct {
	mu         sync.Mutex
	failedAuth *expirable.LRU[string, int]
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		failedAuth: expirable.NewLRU[string, int](TrackedClientsCapacity, nil, FailedAuthWindow),
	}
}

// RecordFailedAuth records a failed authentication attempt and returns the count in the window
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, _ := s.failedAuth.Get(ip)
	count++
	s.failedAuth.Add(ip, count)

	if count >= FailedAuthAlertCount {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
	return count
}

// extractIP gets the client IP address from the request. X-Forwarded-For is
// only honoured when the direct peer is a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	isTrusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			isTrusted = true
			break
		}
	}

	if isTrusted {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// rightmost hop is the one our proxy saw
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			next.ServeHTTP(w, r)
		})
	}
}
