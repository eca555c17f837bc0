package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/pagelayout/internal/config"
	"github.com/vango-dev/pagelayout/internal/demo"
	"github.com/vango-dev/pagelayout/internal/metrics"
	"github.com/vango-dev/pagelayout/pkg/layout"
	"github.com/vango-dev/pagelayout/pkg/render"
)

const tracerName = "pagelayout"

// PageFunc builds the document served at "/".
type PageFunc func(ctx context.Context, l *layout.Layout) render.PageData

// Server is the preview HTTP server.
type Server struct {
	config   *config.Config
	logger   *slog.Logger
	tracer   trace.Tracer
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	layout   *layout.Layout
	renderer *render.Renderer
	page     PageFunc
	handler  http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for requests and page layout.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithTracerProvider sets the tracer provider. Default: otel.GetTracerProvider().
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) {
		s.tracer = tp.Tracer(tracerName)
	}
}

// WithMetrics sets the collectors and the gatherer exposed on /metrics.
// By default the server registers its own collectors on a private registry.
func WithMetrics(m *metrics.Metrics, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = g
	}
}

// WithPage replaces the demo page.
func WithPage(fn PageFunc) Option {
	return func(s *Server) {
		s.page = fn
	}
}

// New creates a Server for cfg.
func New(cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		config: cfg,
		logger: slog.Default(),
		tracer: otel.GetTracerProvider().Tracer(tracerName),
		renderer: render.NewRenderer(render.RendererConfig{
			Pretty: cfg.Render.Pretty,
			Indent: cfg.Render.Indent,
		}),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.metrics == nil && !cfg.Metrics.Disabled {
		reg := prometheus.NewRegistry()
		s.metrics = metrics.New(
			metrics.WithRegistry(reg),
			metrics.WithNamespace(cfg.Metrics.Namespace),
		)
		s.gatherer = reg
	}

	layoutOpts := []layout.Option{layout.WithLogger(s.logger)}
	if s.metrics != nil {
		layoutOpts = append(layoutOpts, layout.WithObserver(s.metrics))
	}
	s.layout = layout.New(layoutOpts...)

	if s.page == nil {
		s.page = func(_ context.Context, l *layout.Layout) render.PageData {
			return demo.Page(l, cfg.Title, cfg.Lang)
		}
	}

	s.handler = s.routes()
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	if !s.config.Metrics.Disabled && s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "pagelayout.render",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("http.path", r.URL.Path)),
	)
	defer span.End()

	start := time.Now()
	var buf bytes.Buffer
	err := s.renderer.RenderPage(&buf, s.page(ctx, s.layout))
	if s.metrics != nil {
		s.metrics.ObserveRender(time.Since(start), err)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error("page render failed", "error", err, "request_id", middleware.GetReqID(ctx))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("pagelayout.bytes", buf.Len()))
	span.SetStatus(codes.Ok, "")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address())
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout())
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
		s.logger.Info("server shutdown complete")
		return nil
	}
}
