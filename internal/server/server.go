// Package server provides the HTTP JSON API over the career guidance engines.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/db"
	"github.com/jonathan/career-compass/internal/logging"
	"github.com/jonathan/career-compass/internal/server/ratelimit"
)

// shutdownTimeout bounds graceful shutdown
const shutdownTimeout = 30 * time.Second

// Server represents the HTTP server
type Server struct {
	httpServer   *http.Server
	catalog      *catalog.Catalog
	store        Store
	closeStore   func()
	sessions     *SessionService
	rateLimiter  *ratelimit.Limiter
	validate     *validator.Validate
	templatePath string
	now          func() time.Time
}

// Config holds server configuration
type Config struct {
	Port         int
	DatabaseURL  string // storage endpoints answer 503 when empty
	Catalog      *catalog.Catalog
	TemplatePath string
	Session      *config.SessionConfig // session endpoints answer 503 when nil
	RateLimit    *ratelimit.Config
}

// New creates a server, connecting to the database when one is configured
func New(ctx context.Context, cfg Config) (*Server, error) {
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}

	var sessions *SessionService
	if cfg.Session != nil {
		var err error
		sessions, err = NewSessionService(cfg.Session)
		if err != nil {
			return nil, fmt.Errorf("failed to create session service: %w", err)
		}
	}

	var (
		store      Store
		closeStore func()
	)
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, err
		}
		store, closeStore = database, database.Close
	} else {
		logging.Warn().Msg("DATABASE_URL not set; guide storage is disabled")
	}

	s := newServer(cfg.Catalog, store, sessions, ratelimit.NewLimiter(cfg.RateLimit))
	s.closeStore = closeStore
	s.templatePath = cfg.TemplatePath
	s.httpServer = &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// newServer wires a server around already constructed dependencies. store and
// sessions may be nil.
func newServer(cat *catalog.Catalog, store Store, sessions *SessionService, limiter *ratelimit.Limiter) *Server {
	return &Server{
		catalog:     cat,
		store:       store,
		sessions:    sessions,
		rateLimiter: limiter,
		validate:    newValidator(),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Handler returns the routed handler with the middleware chain applied
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Catalog
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	mux.HandleFunc("GET /mentors", s.handleListMentors)
	mux.HandleFunc("GET /mentors/{id}", s.handleGetMentor)

	// Engines
	mux.HandleFunc("POST /skill-gap", s.handleSkillGap)
	mux.HandleFunc("POST /skill-gap/priorities", s.handlePrioritizeGaps)
	mux.HandleFunc("POST /skills/suggest", s.handleSuggestSkills)
	mux.HandleFunc("POST /mentors/match", s.handleMatchMentors)
	mux.HandleFunc("POST /roadmaps", s.handleBuildRoadmap)
	mux.HandleFunc("POST /resume/latex", s.handleRenderResume)

	// Sessions and storage
	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.Handle("POST /guides", s.requireSession(s.handleSaveGuide))
	mux.Handle("GET /guides", s.requireSession(s.handleListGuides))
	mux.Handle("GET /guides/latest", s.requireSession(s.handleLatestGuide))
	mux.Handle("DELETE /guides", s.requireSession(s.handleDeleteGuides))
	mux.Handle("POST /learning-paths", s.requireSession(s.handleCreateLearningPath))
	mux.Handle("GET /learning-paths/{id}", s.requireSession(s.handleGetLearningPath))
	mux.Handle("POST /learning-paths/{id}/milestones/{mid}/toggle", s.requireSession(s.handleToggleMilestone))

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logging.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()
	s.Close()
	logging.Info().Msg("server stopped")
	return err
}

// Close releases the rate limiter and the database pool
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.closeStore != nil {
		s.closeStore()
		s.closeStore = nil
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging logs one line per request
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logging.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// withRateLimit rejects clients over their limit with 429
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(clientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientID identifies the caller by remote IP
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Round(time.Second).Seconds())
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	logging.Warn().
		Str("client", clientID(r)).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("limit", info.Limit).
		Msg("rate limit exceeded")

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
