package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgRateLimited      = "Request rate limited"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderRetryAfter     = "Retry-After"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Route paths
const (
	APIPrefix          = "/api/v1"
	PathOracleCallback = APIPrefix + "/oracle/callback"
)

// PublicPaths bypass API key authentication. The oracle callback carries its
// own signature instead.
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/version",
	"/metrics",
	PathOracleCallback,
}

// UnlimitedPaths skip the per-IP rate limiter. The oracle sends exactly one
// signed callback per spin, and a dropped one leaves the spin Pending.
var UnlimitedPaths = []string{
	PathOracleCallback,
}

// QuietPaths are not request-logged
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

const RedactedValue = "[REDACTED]"

// Limits
const (
	MaxRequestBodyBytes    = 1 << 20
	ReadHeaderTimeout      = 5 * time.Second
	FailedAuthAlertCount   = 5
	FailedAuthWindow       = 5 * time.Minute
	TrackedClientsCapacity = 10000
	LimiterIdleTTL         = 10 * time.Minute
)
