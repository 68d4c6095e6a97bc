// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

const namespace = "safewalk"

// Metrics holds every collector the service reports.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	riskAssessments     *prometheus.CounterVec
	rateLimitDenied     *prometheus.CounterVec
	speechCache         *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		httpRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),

		httpRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		riskAssessments: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "risk_assessments_total",
			Help:      "Risk assessments by resulting level.",
		}, []string{"level"}),

		rateLimitDenied: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_denied_total",
			Help:      "Requests rejected by the rate limiter.",
		}, []string{"route"}),

		speechCache: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "speech_cache_total",
			Help:      "Speech synthesis cache lookups by result.",
		}, []string{"result"}),
	}
}

// ObserveHTTP records one finished request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveAssessment counts a risk assessment by level.
func (m *Metrics) ObserveAssessment(level domain.RiskLevel) {
	m.riskAssessments.WithLabelValues(level.String()).Inc()
}

// ObserveRateLimited counts a request denied by the rate limiter.
func (m *Metrics) ObserveRateLimited(route string) {
	m.rateLimitDenied.WithLabelValues(route).Inc()
}

// ObserveSpeechCache counts a speech cache hit or miss.
func (m *Metrics) ObserveSpeechCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.speechCache.WithLabelValues(result).Inc()
}
