package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the site's Prometheus collectors
type Metrics struct {
	gatherer        prometheus.Gatherer
	requests        *prometheus.CounterVec
	durations       *prometheus.HistogramVec
	inFlight        prometheus.Gauge
	verdicts        *prometheus.CounterVec
	resourceFetches *prometheus.CounterVec
}

// NewMetrics registers collectors on reg. Passing a fresh registry keeps tests isolated.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		gatherer: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dnalab_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		durations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dnalab_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "dnalab_http_requests_in_flight",
			Help: "Number of requests currently being served",
		}),
		verdicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dnalab_auth_code_checks_total",
			Help: "Authentication code checks by verdict",
		}, []string{"verdict"}),
		resourceFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dnalab_resource_fetches_total",
			Help: "Static resource fetches by resource and outcome",
		}, []string{"resource", "outcome"}),
	}
}

// Middleware records request counts and latency by chi route pattern
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.durations.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// ObserveVerdict counts one authentication code check
func (m *Metrics) ObserveVerdict(verdict string) {
	m.verdicts.WithLabelValues(verdict).Inc()
}

// ObserveFetch counts one static resource fetch
func (m *Metrics) ObserveFetch(resource string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	m.resourceFetches.WithLabelValues(resource, outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
