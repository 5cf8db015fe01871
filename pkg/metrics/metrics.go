// Package metrics exposes Prometheus instrumentation for the assessment
// service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "aimaturity"

// Manager holds all service metrics.
type Manager struct {
	registry *prometheus.Registry

	AssessmentsStarted   prometheus.Counter
	AssessmentsCompleted prometheus.Counter
	AssessmentsFailed    prometheus.Counter
	AgentFailures        *prometheus.CounterVec
	CacheHits            prometheus.Counter
	CacheMisses          prometheus.Counter
	OrchestrationSeconds prometheus.Histogram
	ActiveSessions       prometheus.Gauge
	HTTPRequests         *prometheus.CounterVec
	HTTPDuration         *prometheus.HistogramVec
}

// New creates a Manager with its own registry.
func New() *Manager {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Manager{
		registry: reg,
		AssessmentsStarted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_started_total",
			Help:      "Assessment orchestrations started.",
		}),
		AssessmentsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_completed_total",
			Help:      "Assessment orchestrations that produced a report.",
		}),
		AssessmentsFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_failed_total",
			Help:      "Orchestrations where every agent failed.",
		}),
		AgentFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "agent_failures_total",
			Help:      "Individual agent analysis failures.",
		}, []string{"agent"}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "result_cache_hits_total",
			Help:      "Assessment results served from cache.",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "result_cache_misses_total",
			Help:      "Assessment runs that missed the result cache.",
		}),
		OrchestrationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "orchestration_duration_seconds",
			Help:      "Wall time of a full orchestration run.",
			Buckets:   prometheus.DefBuckets,
		}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Conversational sessions currently open.",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"route"}),
	}
}

// Handler serves the registry for scraping.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveOrchestration records one orchestration run's duration.
func (m *Manager) ObserveOrchestration(start time.Time) {
	m.OrchestrationSeconds.Observe(time.Since(start).Seconds())
}
