package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var latencyBuckets = []float64{50, 100, 300, 500, 1000, 5000}

const (
	RequestsCollectorName = "chi_requests_total"
	LatencyCollectorName  = "chi_request_duration_milliseconds"
)

// Middleware exposes prometheus metrics for the number of requests and the
// latency, partitioned by status code, method and route pattern.
type Middleware struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMiddleware returns a new prometheus middleware for the provided service name.
func NewMiddleware(name string) *Middleware {
	var m Middleware
	m.requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        RequestsCollectorName,
			Help:        "Number of HTTP requests partitioned by status code, method and HTTP path.",
			ConstLabels: prometheus.Labels{"service": name},
		}, []string{"code", "method", "path"})

	m.latency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        LatencyCollectorName,
		Help:        "Time spent on the request partitioned by status code, method and HTTP path.",
		ConstLabels: prometheus.Labels{"service": name},
		Buckets:     latencyBuckets,
	}, []string{"code", "method", "path"})

	return &m
}

// Handler returns a handler for the middleware pattern.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			rp := rctx.RoutePattern()
			since := float64(time.Since(start).Milliseconds())
			m.requests.WithLabelValues(strconv.Itoa(ww.Status()), r.Method, rp).Inc()
			m.latency.WithLabelValues(strconv.Itoa(ww.Status()), r.Method, rp).Observe(since)
		}
	}
	return http.HandlerFunc(fn)
}

// Collectors returns the collectors for a custom registry.
func (m *Middleware) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.requests, m.latency}
}

// MustRegisterDefault registers the collectors to the default registerer.
// Call it before serving promhttp.Handler().
func (m *Middleware) MustRegisterDefault() {
	if m.requests == nil || m.latency == nil {
		panic("collectors must be set")
	}
	prometheus.MustRegister(m.requests)
	prometheus.MustRegister(m.latency)
}
