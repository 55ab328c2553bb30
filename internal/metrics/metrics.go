// Package metrics records widget activity as Prometheus series.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goliatone/go-formwidget/pkg/model"
	"github.com/goliatone/go-formwidget/pkg/widget"
)

// Config configures the collectors.
type Config struct {
	// Namespace prefixes every series (default: "formwidget").
	Namespace string
	// Registry receives the collectors (default: prometheus.DefaultRegisterer).
	Registry prometheus.Registerer
}

// Option configures Config.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// Metrics holds the collectors. It implements widget.Recorder and is safe to
// share between widgets.
type Metrics struct {
	changes      *prometheus.CounterVec
	submissions  *prometheus.CounterVec
	liveSessions prometheus.Gauge
}

var _ widget.Recorder = (*Metrics)(nil)

// New registers the collectors.
func New(options ...Option) *Metrics {
	cfg := Config{
		Namespace: "formwidget",
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	factory := promauto.With(cfg.Registry)

	return &Metrics{
		changes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "changes_total",
			Help:      "Change events applied, by field and resulting form status",
		}, []string{"field", "status"}),
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "submissions_total",
			Help:      "Submit actions, by form status and collaborator result",
		}, []string{"status", "result"}),
		liveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Name:      "live_sessions",
			Help:      "Open live validation connections",
		}),
	}
}

// Change counts an applied change event.
func (m *Metrics) Change(field model.FieldName, status model.Status) {
	m.changes.WithLabelValues(string(field), string(status)).Inc()
}

// Submit counts a submit action.
func (m *Metrics) Submit(status model.Status, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.submissions.WithLabelValues(string(status), result).Inc()
}

// SessionOpened increments the live session gauge.
func (m *Metrics) SessionOpened() {
	m.liveSessions.Inc()
}

// SessionClosed decrements the live session gauge.
func (m *Metrics) SessionClosed() {
	m.liveSessions.Dec()
}
