// Package server exposes the rendering pipeline over HTTP. It serves the
// interactive tree page, the raw SVG and JSON artifacts, and a Graphviz
// pedigree export.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kintreeapp/kintree/pkg/errors"
	"github.com/kintreeapp/kintree/pkg/pipeline"
)

const (
	readHeaderTimeout = 5 * time.Second
	requestTimeout    = 30 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Options configures the server.
type Options struct {
	Addr       string
	Runner     *pipeline.Runner
	Logger     *log.Logger
	FrameWidth float64
	Style      string

	// OwnTree marks every request as operating on the viewer's own tree,
	// enabling add-relative placeholders. Per-request auth is out of scope
	// here; deployments front this with their own identity layer.
	OwnTree bool
}

// Server serves family tree renders over HTTP.
type Server struct {
	addr       string
	runner     *pipeline.Runner
	logger     *log.Logger
	frameWidth float64
	style      string
	ownTree    bool
}

// New creates a server. A nil logger falls back to the default logger.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}
	if opts.FrameWidth == 0 {
		opts.FrameWidth = pipeline.DefaultFrameWidth
	}
	if opts.Style == "" {
		opts.Style = pipeline.DefaultStyle
	}
	return &Server{
		addr:       opts.Addr,
		runner:     opts.Runner,
		logger:     opts.Logger,
		frameWidth: opts.FrameWidth,
		style:      opts.Style,
		ownTree:    opts.OwnTree,
	}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Get("/tree/{personID}", s.handleTreePage)
	r.Get("/tree/{personID}.svg", s.handleTreeSVG)
	r.Get("/api/tree/{personID}", s.handleTreeJSON)
	r.Get("/api/tree/{personID}/pedigree.dot", s.handlePedigreeDOT)

	return r
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "server shutdown")
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}
