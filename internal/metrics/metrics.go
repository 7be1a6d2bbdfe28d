// Package metrics holds the Prometheus collectors of funnel rendering.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultMetricsNamespace = "funnel"

// Config contains metrics configuration.
type Config struct {
	// Namespace is the prometheus namespace for all metrics. If empty, defaults to "funnel".
	Namespace string
	// ConstLabels are added to all metrics as constant labels.
	ConstLabels map[string]string
	// Registerer is the prometheus registerer to use. If nil, prometheus.DefaultRegisterer is used.
	Registerer prometheus.Registerer
}

// Registry holds the funnel metrics.
type Registry struct {
	rendersTotal      *prometheus.CounterVec
	renderErrorsTotal *prometheus.CounterVec
	renderDuration    *prometheus.HistogramVec
	reloadsTotal      *prometheus.CounterVec
	httpRequestsTotal *prometheus.CounterVec
}

// New creates the funnel metrics and registers them with cfg.Registerer.
// Collectors that are already registered are reused.
func New(cfg Config) (*Registry, error) {
	registerer := cfg.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	metricsNamespace := cfg.Namespace
	if metricsNamespace == "" {
		metricsNamespace = defaultMetricsNamespace
	}

	constLabels := prometheus.Labels(cfg.ConstLabels)

	m := &Registry{}

	m.rendersTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   metricsNamespace,
		Subsystem:   "render",
		Name:        "total",
		Help:        "Number of rendered funnels.",
		ConstLabels: constLabels,
	}, []string{"source", "graph_type"})

	m.renderErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   metricsNamespace,
		Subsystem:   "render",
		Name:        "errors_total",
		Help:        "Number of failed funnel renders.",
		ConstLabels: constLabels,
	}, []string{"source"})

	m.renderDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   metricsNamespace,
		Subsystem:   "render",
		Name:        "duration_seconds",
		Buckets:     prometheus.DefBuckets,
		Help:        "Histogram of funnel render duration.",
		ConstLabels: constLabels,
	}, []string{"source"})

	m.reloadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   metricsNamespace,
		Subsystem:   "watch",
		Name:        "reloads_total",
		Help:        "Number of dataset reloads by outcome.",
		ConstLabels: constLabels,
	}, []string{"result"})

	m.httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   metricsNamespace,
		Subsystem:   "http",
		Name:        "requests_total",
		Help:        "Number of incoming HTTP requests.",
		ConstLabels: constLabels,
	}, []string{"path", "method", "status"})

	var err error
	if m.rendersTotal, err = register(registerer, m.rendersTotal); err != nil {
		return nil, err
	}
	if m.renderErrorsTotal, err = register(registerer, m.renderErrorsTotal); err != nil {
		return nil, err
	}
	if m.renderDuration, err = register(registerer, m.renderDuration); err != nil {
		return nil, err
	}
	if m.reloadsTotal, err = register(registerer, m.reloadsTotal); err != nil {
		return nil, err
	}
	if m.httpRequestsTotal, err = register(registerer, m.httpRequestsTotal); err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](registerer prometheus.Registerer, c C) (C, error) {
	err := registerer.Register(c)
	if err == nil {
		return c, nil
	}
	var alreadyRegistered prometheus.AlreadyRegisteredError
	if errors.As(err, &alreadyRegistered) {
		if existing, ok := alreadyRegistered.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return c, err
}

// ObserveRender records one render from source. A nil Registry records
// nothing.
func (m *Registry) ObserveRender(source, graphType string, d time.Duration, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.renderErrorsTotal.WithLabelValues(source).Inc()
		return
	}
	m.rendersTotal.WithLabelValues(source, graphType).Inc()
	m.renderDuration.WithLabelValues(source).Observe(d.Seconds())
}

// ObserveReload records a dataset reload.
func (m *Registry) ObserveReload(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.reloadsTotal.WithLabelValues(result).Inc()
}

// ObserveHTTPRequest counts a served HTTP request.
func (m *Registry) ObserveHTTPRequest(path, method string, status int) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
}
