package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the portal:
// HTTP traffic, cache behaviour, AI generation calls and login outcomes.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheLatency    prometheus.Observer
	cacheWrite      prometheus.Observer
	cacheHitRatio   prometheus.Gauge
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	aiDuration      *prometheus.HistogramVec
	aiTotal         *prometheus.CounterVec
	loginsStarted   prometheus.Counter
	loginsCompleted *prometheus.CounterVec
	xpAwarded       prometheus.Counter

	cacheHitCount  uint64
	cacheMissCount uint64
	requestCount   uint64
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	cacheLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_latency_seconds",
		Help:    "Latency for cache operations",
		Buckets: prometheus.DefBuckets,
	})

	cacheWrite := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_write_seconds",
		Help:    "Latency for cache set operations",
		Buckets: prometheus.DefBuckets,
	})

	cacheHitRatio := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cache_hit_ratio",
		Help: "Ratio of cache hits to total cache lookups",
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses",
	})

	aiDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ai_generation_duration_seconds",
		Help:    "Duration of AI text generation calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	aiTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ai_generations_total",
		Help: "Total AI generation calls by outcome",
	}, []string{"operation", "outcome"})

	loginsStarted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "login_flows_started_total",
		Help: "Total login flows opened",
	})

	loginsCompleted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "logins_completed_total",
		Help: "Total completed logins by role",
	}, []string{"role"})

	xpAwarded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "xp_awarded_total",
		Help: "Total experience points granted to student sessions",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, cacheLatency, cacheWrite,
		cacheHitRatio, cacheHits, cacheMisses, aiDuration, aiTotal,
		loginsStarted, loginsCompleted, xpAwarded, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		cacheLatency:    cacheLatency,
		cacheWrite:      cacheWrite,
		cacheHitRatio:   cacheHitRatio,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
		aiDuration:      aiDuration,
		aiTotal:         aiTotal,
		loginsStarted:   loginsStarted,
		loginsCompleted: loginsCompleted,
		xpAwarded:       xpAwarded,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
}

// RecordCacheOperation records cache hit/miss metrics and updates hit ratio.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	if m.cacheLatency != nil {
		m.cacheLatency.Observe(duration.Seconds())
	}
	if hit {
		m.cacheHits.Inc()
		atomic.AddUint64(&m.cacheHitCount, 1)
	} else {
		m.cacheMisses.Inc()
		atomic.AddUint64(&m.cacheMissCount, 1)
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	misses := atomic.LoadUint64(&m.cacheMissCount)
	if total := hits + misses; total > 0 {
		m.cacheHitRatio.Set(float64(hits) / float64(total))
	}
}

// ObserveCacheWrite tracks the duration for cache write operations.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil || m.cacheWrite == nil {
		return
	}
	m.cacheWrite.Observe(duration.Seconds())
}

// ObserveAIGeneration records one AI call. Outcome is "ok", "error" or
// "fallback".
func (m *MetricsService) ObserveAIGeneration(operation, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.aiDuration.WithLabelValues(operation).Observe(duration.Seconds())
	m.aiTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordLoginStarted counts an opened login flow.
func (m *MetricsService) RecordLoginStarted() {
	if m == nil {
		return
	}
	m.loginsStarted.Inc()
}

// RecordXPAwarded counts granted experience points.
func (m *MetricsService) RecordXPAwarded(amount int) {
	if m == nil {
		return
	}
	m.xpAwarded.Add(float64(amount))
}

// RecordLoginCompleted counts a finished login for the role.
func (m *MetricsService) RecordLoginCompleted(role string) {
	if m == nil {
		return
	}
	m.loginsCompleted.WithLabelValues(role).Inc()
}
