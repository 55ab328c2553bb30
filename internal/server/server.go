// Package server hosts the form over HTTP: a no-JavaScript POST round trip,
// a websocket live validation channel, and a JSON submission sink described
// by the OpenAPI document.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goliatone/go-formwidget/internal/metrics"
	"github.com/goliatone/go-formwidget/pkg/model"
	"github.com/goliatone/go-formwidget/pkg/render"
	"github.com/goliatone/go-formwidget/pkg/renderers/text"
	"github.com/goliatone/go-formwidget/pkg/renderers/vanilla"
	"github.com/goliatone/go-formwidget/pkg/submit"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

const (
	LivePath   = "/live"
	AssetsPath = "/assets/"

	defaultTitle    = "Sign up"
	shutdownTimeout = 5 * time.Second
)

// Config wires the server collaborators. Zero values fall back to defaults.
type Config struct {
	Logger *slog.Logger
	// HTML renders the page. Defaults to the vanilla renderer.
	HTML render.Renderer
	// Submitter receives every submitted snapshot. Defaults to submit.Log.
	Submitter submit.Submitter
	// Registry backs /metrics and the widget recorder. Defaults to a fresh
	// registry.
	Registry *prometheus.Registry
	Title    string
}

// Server is the HTTP surface. Each request or websocket connection owns its
// own widget.
type Server struct {
	logger    *slog.Logger
	renderers *render.Registry
	htmlName  string
	submitter submit.Submitter
	metrics   *metrics.Metrics
	registry  *prometheus.Registry
	title     string
	upgrader  websocket.Upgrader
	router    chi.Router

	mu          sync.Mutex
	submissions []StoredSubmission
}

// StoredSubmission is a payload accepted by the JSON sink.
type StoredSubmission struct {
	ID     string          `json:"id"`
	State  model.FormState `json:"state"`
	Status model.Status    `json:"status"`
}

// New builds the server and its routes.
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	html := cfg.HTML
	if html == nil {
		r, err := vanilla.New()
		if err != nil {
			return nil, fmt.Errorf("server: html renderer: %w", err)
		}
		html = r
	}
	renderers, err := render.NewRegistry(html, text.New())
	if err != nil {
		return nil, fmt.Errorf("server: renderers: %w", err)
	}
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	submitter := cfg.Submitter
	if submitter == nil {
		submitter = submit.Log(logger)
	}
	title := cfg.Title
	if title == "" {
		title = defaultTitle
	}

	s := &Server{
		logger:    logger,
		renderers: renderers,
		submitter: submitter,
		metrics:   metrics.New(metrics.WithRegistry(registry)),
		registry:  registry,
		title:     title,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	s.htmlName = html.Name()
	s.router = s.routes()
	return s, nil
}

// Handler exposes the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleForm)
	r.Post("/", s.handleFormPost)
	r.Get(LivePath, s.handleLive)
	r.Route("/api/submissions", func(r chi.Router) {
		r.Post("/", s.handleSubmissionCreate)
		r.Get("/", s.handleSubmissionList)
	})
	r.Get("/openapi.json", s.handleOpenAPI)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle(AssetsPath+"*", http.StripPrefix(AssetsPath, http.FileServer(http.FS(vanilla.AssetsFS()))))
	return r
}

func (s *Server) newWidget() *widget.Widget {
	return widget.New(
		widget.WithLogger(s.logger),
		widget.WithSubmitter(s.submitter),
		widget.WithRecorder(s.metrics),
	)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.DebugContext(r.Context(), "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string, readHeaderTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}
