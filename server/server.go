package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/hupe1980/llmcouncil/logging"
)

// Options configures the HTTP server.
type Options struct {
	// DefaultRounds applies when a request omits "rounds".
	DefaultRounds int
	// MaxRounds rejects larger round counts with 400 before the council is
	// called. Defaults to core.DefaultMaxRounds.
	MaxRounds int
	// ReadHeaderTimeout bounds header reads. Discussions are long-running,
	// so no write timeout is applied.
	ReadHeaderTimeout time.Duration
	Logger            logging.Logger
}

// Server is the council HTTP service.
type Server struct {
	http   *http.Server
	logger logging.Logger
}

// New creates a server for council listening on addr.
func New(addr string, council Council, optFns ...func(o *Options)) *Server {
	opts := Options{
		ReadHeaderTimeout: 10 * time.Second,
		Logger:            logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	h := &RestHandler{
		Council:       council,
		Logger:        opts.Logger,
		DefaultRounds: opts.DefaultRounds,
		MaxRounds:     opts.MaxRounds,
	}

	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           NewHandler(h),
			ReadHeaderTimeout: opts.ReadHeaderTimeout,
		},
		logger: opts.Logger,
	}
}

// NewHandler builds the routed, middleware-wrapped handler.
func NewHandler(h *RestHandler) http.Handler {
	logger := h.Logger
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /council/discuss", jsonErrorMiddleware(logger, h.handleDiscuss))
	mux.HandleFunc("GET /council/members", jsonErrorMiddleware(logger, h.handleMembers))
	mux.HandleFunc("GET /council/discussions/{id}", jsonErrorMiddleware(logger, h.handleDiscussion))
	mux.HandleFunc("GET /healthz", jsonErrorMiddleware(logger, h.handleHealth))

	// any other method on a known path
	mux.HandleFunc("/council/discuss", jsonErrorMiddleware(logger, allowOnly("POST, OPTIONS")))
	mux.HandleFunc("/council/members", jsonErrorMiddleware(logger, allowOnly("GET, HEAD, OPTIONS")))
	mux.HandleFunc("/council/discussions/{id}", jsonErrorMiddleware(logger, allowOnly("GET, HEAD, OPTIONS")))
	mux.HandleFunc("/healthz", jsonErrorMiddleware(logger, allowOnly("GET, HEAD, OPTIONS")))

	return corsMiddleware(loggingMiddleware(logger, mux))
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.http.Addr }

// ListenAndServe serves until Shutdown. A clean shutdown returns nil.
func (s *Server) ListenAndServe() error {
	s.logger.Info("server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight discussions
// until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.http.Shutdown(ctx)
}
