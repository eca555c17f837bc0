// Package metrics records Prometheus metrics for page rendering and slot
// classification.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vango-dev/pagelayout/pkg/slot"
)

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "pagelayout").
	Namespace string

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collectors.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "pagelayout",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the collectors. It implements layout.Observer.
type Metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration prometheus.Histogram
	slotChildren   *prometheus.CounterVec
	droppedTotal   *prometheus.CounterVec
}

// New registers the collectors and returns them.
func New(opts ...Option) *Metrics {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "renders_total",
			Help:      "Total number of page renders",
		}, []string{"status"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "render_duration_seconds",
			Help:      "Page render duration in seconds",
			Buckets:   config.Buckets,
		}),

		slotChildren: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "slot_children_total",
			Help:      "Total number of children assigned to each layout slot",
		}, []string{"slot"}),

		droppedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "dropped_children_total",
			Help:      "Total number of layout children left out of every slot",
		}, []string{"reason"}),
	}
}

// ObserveRender records one page render.
func (m *Metrics) ObserveRender(d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.rendersTotal.WithLabelValues(status).Inc()
	m.renderDuration.Observe(d.Seconds())
}

// ObserveSlots records how many children landed in each slot.
func (m *Metrics) ObserveSlots(result slot.Result) {
	for name, nodes := range result {
		m.slotChildren.WithLabelValues(name).Add(float64(len(nodes)))
	}
}

// ObserveDrop records a child that matched no slot.
func (m *Metrics) ObserveDrop(reason slot.DropReason) {
	m.droppedTotal.WithLabelValues(reason.String()).Inc()
}
