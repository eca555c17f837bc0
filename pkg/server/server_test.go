package server

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/pagelayout/internal/config"
	"github.com/vango-dev/pagelayout/internal/metrics"
	"github.com/vango-dev/pagelayout/pkg/layout"
	"github.com/vango-dev/pagelayout/pkg/render"
	"github.com/vango-dev/pagelayout/pkg/vdom"
)

func testConfig() *config.Config {
	cfg := config.New()
	cfg.Title = "Preview"
	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPage(t *testing.T) {
	s := New(testConfig(), WithLogger(discardLogger()))

	rec := get(t, s.Handler(), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Preview</title>",
		`<div class="PageLayout"><aside aria-label="Sidebar" class="PageSidebar">Sidebar</aside>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestHealthz(t *testing.T) {
	s := New(testConfig(), WithLogger(discardLogger()))

	rec := get(t, s.Handler(), "/healthz")
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Errorf("GET /healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestNotFound(t *testing.T) {
	s := New(testConfig(), WithLogger(discardLogger()))

	if rec := get(t, s.Handler(), "/missing"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(testConfig(), WithLogger(discardLogger()))
	h := s.Handler()

	get(t, h, "/")
	get(t, h, "/")

	rec := get(t, h, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`pagelayout_renders_total{status="ok"} 2`,
		`pagelayout_slot_children_total{slot="main"} 2`,
		"pagelayout_render_duration_seconds_count 2",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("/metrics missing %q", want)
		}
	}
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Disabled = true
	s := New(cfg, WithLogger(discardLogger()))

	if rec := get(t, s.Handler(), "/metrics"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if rec := get(t, s.Handler(), "/"); rec.Code != http.StatusOK {
		t.Errorf("page status = %d, want 200", rec.Code)
	}
}

func TestRenderFailure(t *testing.T) {
	var logs bytes.Buffer
	reg := prometheus.NewRegistry()
	m := metrics.New(metrics.WithRegistry(reg))

	s := New(testConfig(),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
		WithMetrics(m, reg),
		WithTracerProvider(noop.NewTracerProvider()),
		WithPage(func(context.Context, *layout.Layout) render.PageData {
			return render.PageData{Body: vdom.Div(&vdom.VNode{Kind: vdom.VKind(99)})}
		}),
	)

	rec := get(t, s.Handler(), "/")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(logs.String(), "page render failed") {
		t.Errorf("expected failure log, got %q", logs.String())
	}
	if n, err := testutil.GatherAndCount(reg, "pagelayout_renders_total"); err != nil || n != 1 {
		t.Errorf("renders_total series = %d (err %v), want 1", n, err)
	}
}

func TestCustomPage(t *testing.T) {
	s := New(testConfig(),
		WithLogger(discardLogger()),
		WithPage(func(_ context.Context, l *layout.Layout) render.PageData {
			return render.PageData{Title: "Custom", Body: l.Render(layout.Main("only main"))}
		}),
	)

	body := get(t, s.Handler(), "/").Body.String()
	if !strings.Contains(body, `<div class="PageLayout"><div class="PageMain">only main</div></div>`) {
		t.Errorf("body = %q", body)
	}
}

func TestServeShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	s := New(testConfig(), WithLogger(discardLogger()))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		cancel()
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v, want nil after shutdown", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
