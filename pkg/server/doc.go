// Package server serves rendered pages over HTTP for local preview.
//
// The router is chi with request IDs, panic recovery and an slog request
// logger. Routes:
//
//	GET /         the page, rendered on every request
//	GET /healthz  liveness probe, always "OK"
//	GET /metrics  Prometheus exposition (unless metrics are disabled)
//
// Every page render runs inside an OpenTelemetry span named
// "pagelayout.render" taken from the global tracer provider, or the one passed
// with WithTracerProvider.
package server
