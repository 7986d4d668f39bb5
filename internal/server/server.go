package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/server/ratelimit"
	"github.com/jonathan/resume-matcher/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ExtractFunc turns uploaded file bytes into plain text, returning "" for
// unsupported or unreadable files.
type ExtractFunc func(data []byte, filename string) string

// MatchFunc ranks the catalog against résumé text.
type MatchFunc func(resumeText string, cat *catalog.Catalog) (*types.MatchResult, error)

// Server represents the HTTP server
type Server struct {
	httpServer      *http.Server
	handler         http.Handler
	catalog         *catalog.Catalog
	logger          *zap.Logger
	rateLimiter     *ratelimit.Limiter
	allowedOrigins  map[string]bool
	allowAnyOrigin  bool
	maxUploadBytes  int64
	shutdownTimeout time.Duration

	extract ExtractFunc
	match   MatchFunc
}

// Option customizes a Server.
type Option func(*Server)

// WithExtractor replaces the file extraction collaborator.
func WithExtractor(fn ExtractFunc) Option {
	return func(s *Server) { s.extract = fn }
}

// WithMatcher replaces the ranking function.
func WithMatcher(fn MatchFunc) Option {
	return func(s *Server) { s.match = fn }
}

// New creates a new server instance. The catalog is shared read-only by all requests.
func New(cfg *config.Config, cat *catalog.Catalog, logger *zap.Logger, opts ...Option) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server config is required")
	}
	if cat == nil || cat.Len() == 0 {
		return nil, errors.New("role catalog is required")
	}

	s := &Server{
		catalog:         cat,
		logger:          observability.WithFields(logger),
		rateLimiter:     ratelimit.NewLimiter(ratelimit.NewConfig(cfg.RateLimit)),
		allowedOrigins:  make(map[string]bool, len(cfg.AllowedOrigins)),
		maxUploadBytes:  cfg.MaxUploadBytes,
		shutdownTimeout: cfg.ShutdownTimeout,
		extract:         extraction.ExtractText,
		match:           ranking.Match,
	}
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			s.allowAnyOrigin = true
		}
		s.allowedOrigins[origin] = true
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /check_resume", s.handleCheckResume)
	mux.HandleFunc("GET /roles", s.handleListRoles)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.handler = s.withRequestID(s.withLogging(s.withRecover(s.withCORS(s.withRateLimit(mux)))))

	s.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server starting",
			zap.String("addr", s.httpServer.Addr),
			zap.Int("roles", s.catalog.Len()))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		s.rateLimiter.Stop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		s.logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}

// Close releases background resources without serving.
func (s *Server) Close() {
	s.rateLimiter.Stop()
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
