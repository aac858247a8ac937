package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/BrandishSpin_Go/internal/database"
	"github.com/osse101/BrandishSpin_Go/internal/handler"
	"github.com/osse101/BrandishSpin_Go/internal/ledger"
	"github.com/osse101/BrandishSpin_Go/internal/logger"
	"github.com/osse101/BrandishSpin_Go/internal/metrics"
	"github.com/osse101/BrandishSpin_Go/internal/spin"
	"github.com/osse101/BrandishSpin_Go/internal/sse"
	"github.com/osse101/BrandishSpin_Go/internal/stats"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	OracleSecret   string
	RateLimitRPS   float64
	RateLimitBurst int
	Display        handler.Display
	// Ledger serves the balance and allowance reads; nil disables them
	Ledger ledger.Client
	// DevLedger mounts the admin funding routes. Set it only for the in-memory ledger.
	DevLedger handler.DevLedger
}

type Server struct {
	httpServer   *http.Server
	dbPool       database.Pool
	spinService  spin.Service
	statsService stats.Service
}

// NewServer creates a new Server instance. dbPool is nil with the in-memory
// store; hub is nil when the event stream is disabled.
func NewServer(opts Options, dbPool database.Pool, spinService spin.Service, statsService stats.Service, hub *sse.Hub) *Server {
	r := chi.NewRouter()

	detector := NewSuspiciousActivityDetector()
	limiter := NewIPRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, limiter))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route(APIPrefix, func(r chi.Router) {
		r.Route("/spins", func(r chi.Router) {
			r.Post("/", handler.HandleCreateSpin(spinService))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.HandleGetSpin(spinService))
				r.Get("/fulfilled", handler.HandleIsFulfilled(spinService))
				r.Get("/result", handler.HandleGetResult(spinService))
				r.Get("/player", handler.HandleGetPlayer(spinService))
				r.Post("/payout/retry", handler.HandleRetryPayout(spinService))
			})
		})
		r.Get("/spin/config", handler.HandleGetConfig(spinService, opts.Display))
		r.Get("/stats/{player}", handler.HandleGetPlayerStats(statsService, opts.Display))
		r.Post("/oracle/callback", handler.HandleOracleCallback(spinService, opts.OracleSecret))

		if opts.Ledger != nil {
			r.Route("/ledger", func(r chi.Router) {
				r.Get("/balance/{account}", handler.HandleGetBalance(opts.Ledger, opts.Display))
				r.Get("/allowance/{owner}", handler.HandleGetAllowance(opts.Ledger, opts.Display))
			})
		}

		if opts.DevLedger != nil {
			adminLedgerHandler := handler.NewAdminLedgerHandler(opts.DevLedger, opts.Display)
			r.Route("/admin/ledger", func(r chi.Router) {
				r.Post("/mint", adminLedgerHandler.HandleAdminMint)
				r.Post("/approve", adminLedgerHandler.HandleAdminApprove)
			})
		}

		if hub != nil {
			r.Get("/events", sse.Handler(hub))
		}
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		dbPool:       dbPool,
		spinService:  spinService,
		statsService: statsService,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the event stream working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// sanitizeHeaders redacts credentials and oracle signatures
func sanitizeHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) ||
			strings.EqualFold(k, HeaderAuthorization) ||
			strings.HasSuffix(strings.ToLower(k), "signature") {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
