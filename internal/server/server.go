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

	"github.com/osse101/TCGTourney_Go/internal/handler"
	"github.com/osse101/TCGTourney_Go/internal/logger"
	"github.com/osse101/TCGTourney_Go/internal/metrics"
	"github.com/osse101/TCGTourney_Go/internal/session"
	"github.com/osse101/TCGTourney_Go/internal/sse"
)

type Server struct {
	httpServer *http.Server
	sessions   session.Service
	hub        *sse.Hub
}

// NewServer creates a new Server instance. An empty apiKey leaves the API
// open; a nil hub disables the event stream.
func NewServer(port int, apiKey string, trustedProxies []string, sessions session.Service, hub *sse.Hub) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, sessions, hub),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		sessions: sessions,
		hub:      hub,
	}
}

// NewRouter builds the full route tree and middleware stack
func NewRouter(apiKey string, trustedProxies []string, sessions session.Service, hub *sse.Hub) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	if apiKey != "" {
		r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	}
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(sessions))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	// API docs, generated from handler annotations by swag
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	tournaments := handler.NewTournamentHandler(sessions)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog/base", tournaments.HandleBaseCatalog)
		if hub != nil {
			r.Get("/events", sse.Handler(hub))
		}

		r.Route("/tournaments", func(r chi.Router) {
			r.Post("/", tournaments.HandleCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", tournaments.HandleGet)
				r.Delete("/", tournaments.HandleDelete)
				r.Post("/cards", tournaments.HandleAddCard)
				r.Post("/rounds", tournaments.HandleRunRound)
				r.Post("/autoplay", tournaments.HandleAutoPlay)
				r.Post("/restart", tournaments.HandleRestart)
				r.Get("/journal", tournaments.HandleJournal)
			})
		})
	})

	return r
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

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Probes and scrapes are too frequent to log
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Reuse a caller supplied id so traces line up across services
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop ends open event streams, drains in-flight requests, then drops every
// session
func (s *Server) Stop(ctx context.Context) error {
	if s.hub != nil {
		s.hub.Stop()
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	return s.sessions.Shutdown(ctx)
}
