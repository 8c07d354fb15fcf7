package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "academia"

type LoginOutcome string

const (
	LoginOutcomeMissingFields LoginOutcome = "missing_fields"
	LoginOutcomeSuccess       LoginOutcome = "success"
	LoginOutcomeFailure       LoginOutcome = "failure"
	LoginOutcomeCancelled     LoginOutcome = "cancelled"
	LoginOutcomeError         LoginOutcome = "error"
)

// Metrics groups the site collectors in a dedicated registry. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	registry         *prometheus.Registry
	pageViews        *prometheus.CounterVec
	loginSubmissions *prometheus.CounterVec
	loginPending     prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		pageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_views_total",
			Help:      "Number of rendered pages",
		}, []string{"page"}),
		loginSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_submissions_total",
			Help:      "Number of login form submissions by outcome",
		}, []string{"outcome"}),
		loginPending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "login_pending",
			Help:      "Number of login submissions waiting for their resolution",
		}),
	}

	m.registry.MustRegister(
		m.pageViews,
		m.loginSubmissions,
		m.loginPending,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) PageViewed(page string) {
	if m == nil {
		return
	}

	m.pageViews.WithLabelValues(page).Inc()
}

func (m *Metrics) LoginSubmitted(outcome LoginOutcome) {
	if m == nil {
		return
	}

	m.loginSubmissions.WithLabelValues(string(outcome)).Inc()
}

func (m *Metrics) LoginPending(delta float64) {
	if m == nil {
		return
	}

	m.loginPending.Add(delta)
}

// LoginSubmissions returns the submissions counter, labelled by outcome.
func (m *Metrics) LoginSubmissions() *prometheus.CounterVec {
	if m == nil {
		return nil
	}

	return m.loginSubmissions
}

func (m *Metrics) LoginPendingGauge() prometheus.Gauge {
	if m == nil {
		return nil
	}

	return m.loginPending
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}

	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
