// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server serves the search page, the JSON search API and a
// server-rendered results fragment over a loaded corpus.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/pdiddy/shakesearch/internal/logger"
	"github.com/pdiddy/shakesearch/internal/render"
	"github.com/pdiddy/shakesearch/internal/searchlog"
	"github.com/pdiddy/shakesearch/pkg/types"
)

//go:embed static
var staticFS embed.FS

const (
	defaultAddr            = ":3001"
	defaultRateBurst       = 20
	defaultShutdownTimeout = 5 * time.Second
)

// Searcher answers parsed keyword queries. *corpus.Index implements it.
type Searcher interface {
	Search(terms []string) []types.SearchResult
}

// Recorder stores answered queries. *searchlog.Store implements it.
type Recorder interface {
	Record(ctx context.Context, e searchlog.Entry) error
}

// Server is the shakesearch HTTP server.
type Server struct {
	cfg      types.ServerConfig
	index    Searcher
	renderer *render.Renderer
	recorder Recorder
	limiter  *rate.Limiter
}

// New returns a server over index. recorder may be nil to disable the
// search log.
func New(cfg types.ServerConfig, index Searcher, renderer *render.Renderer, recorder Recorder) *Server {
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = defaultRateBurst
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Server{
		cfg:      cfg,
		index:    index,
		renderer: renderer,
		recorder: recorder,
		limiter:  limiter,
	}
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(fmt.Sprintf("static assets: %v", err))
	}

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /search", s.handleSearch)
	mux.HandleFunc("GET /results", s.handleResults)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	return requestID(instrument(rateLimit(s.limiter, cors(mux))))
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.cfg.Addr }

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.For(ctx).Infof("listening on %s", ln.Addr())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
