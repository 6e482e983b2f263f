package metrics

import (
	"net/http"
	"strconv"
	"time"

	"lodging-service/internal/domain/booking"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lodging"

type Metrics struct {
	registry    *prometheus.Registry
	httpTotal   *prometheus.CounterVec
	httpLatency *prometheus.HistogramVec
	admissions  *prometheus.CounterVec
	cacheEvents *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
			[]string{"route", "method", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "http_request_duration_seconds",
				Help:    "HTTP request duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		admissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "booking_admissions_total", Help: "Booking admission decisions."},
			[]string{"operation", "decision"},
		),
		cacheEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "cache_events_total", Help: "Cache hits/misses/sets/errors."},
			[]string{"cache", "event"}, // event: hit|miss|set|error
		),
	}

	m.registry.MustRegister(
		m.httpTotal, m.httpLatency, m.admissions, m.cacheEvents,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTP(route, method string, status int, dur time.Duration) {
	m.httpTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func (m *Metrics) RecordAdmission(operation string, decision booking.Decision) {
	m.admissions.WithLabelValues(operation, decision.String()).Inc()
}

func (m *Metrics) ObserveCache(cache, event string) {
	m.cacheEvents.WithLabelValues(cache, event).Inc()
}
