package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ies"

// Metrics holds the Prometheus collectors of the service
type Metrics struct {
	registry *prometheus.Registry

	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	reportsBuilt       *prometheus.CounterVec
	unresolvedNames    *prometheus.CounterVec
	cacheRequests      *prometheus.CounterVec
	rateLimitBlocks    *prometheus.CounterVec
	rateLimitFallbacks prometheus.Counter
	redisPingFailures  prometheus.Counter
	assessmentsStored  prometheus.Counter
}

// MustNewMetrics registers every collector on reg and panics on conflict.
// Go runtime and process collectors are registered alongside.
func MustNewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		reportsBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_built_total",
			Help:      "Diagnostic reports built, by input source.",
		}, []string{"source"}),
		unresolvedNames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unresolved_dimension_names_total",
			Help:      "Dimension names that could not be mapped to a canonical dimension.",
		}, []string{"source"}),
		cacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_cache_requests_total",
			Help:      "Report cache lookups by result.",
		}, []string{"result"}),
		rateLimitBlocks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_blocks_total",
			Help:      "Requests rejected by the rate limiter, by backend.",
		}, []string{"backend"}),
		rateLimitFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_fallbacks_total",
			Help:      "Rate limit checks served by the in-memory limiter after a Redis failure.",
		}),
		redisPingFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redis_ping_failures_total",
			Help:      "Failed Redis pings at startup or health check.",
		}),
		assessmentsStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_stored_total",
			Help:      "Assessments persisted.",
		}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.reportsBuilt,
		m.unresolvedNames,
		m.cacheRequests,
		m.rateLimitBlocks,
		m.rateLimitFallbacks,
		m.redisPingFailures,
		m.assessmentsStored,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRequest records one finished HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) IncReportBuilt(source string) {
	if m == nil {
		return
	}
	m.reportsBuilt.WithLabelValues(source).Inc()
}

func (m *Metrics) IncUnresolvedDimension(source string) {
	if m == nil {
		return
	}
	m.unresolvedNames.WithLabelValues(source).Inc()
}

func (m *Metrics) IncCacheHit() {
	if m == nil {
		return
	}
	m.cacheRequests.WithLabelValues("hit").Inc()
}

func (m *Metrics) IncCacheMiss() {
	if m == nil {
		return
	}
	m.cacheRequests.WithLabelValues("miss").Inc()
}

func (m *Metrics) IncRateLimitBlock(backend string) {
	if m == nil {
		return
	}
	m.rateLimitBlocks.WithLabelValues(backend).Inc()
}

func (m *Metrics) IncRateLimitFallback() {
	if m == nil {
		return
	}
	m.rateLimitFallbacks.Inc()
}

func (m *Metrics) IncRedisPingFailure() {
	if m == nil {
		return
	}
	m.redisPingFailures.Inc()
}

func (m *Metrics) IncAssessmentStored() {
	if m == nil {
		return
	}
	m.assessmentsStored.Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
