// Package metrics owns the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "carecompanion"

// Metrics holds every collector on a dedicated registry, so tests can build
// as many instances as they like.
type Metrics struct {
	registry *prometheus.Registry

	voiceCommands   *prometheus.CounterVec
	handlerFailures *prometheus.CounterVec
	locationUpdates *prometheus.CounterVec
	geofenceExits   prometheus.Counter
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// New registers all collectors, including the Go runtime and process ones.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		voiceCommands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "voice_commands_total",
			Help:      "Voice commands processed, by classified intent.",
		}, []string{"intent"}),

		handlerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "voice_handler_failures_total",
			Help:      "Action handler failures recovered into apology text, by intent.",
		}, []string{"intent"}),

		locationUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "location_updates_total",
			Help:      "Location updates received, by outcome.",
		}, []string{"outcome"}),

		geofenceExits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geofence_exits_total",
			Help:      "Location samples that fell outside the user's home zone.",
		}),

		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by method, route pattern and status.",
		}, []string{"method", "route", "status"}),

		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.voiceCommands,
		m.handlerFailures,
		m.locationUpdates,
		m.geofenceExits,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) VoiceCommand(intent string) {
	m.voiceCommands.WithLabelValues(intent).Inc()
}

func (m *Metrics) HandlerFailure(intent string) {
	m.handlerFailures.WithLabelValues(intent).Inc()
}

// LocationUpdate records one update; ok is false when the insert failed.
func (m *Metrics) LocationUpdate(ok bool) {
	outcome := "logged"
	if !ok {
		outcome = "failed"
	}
	m.locationUpdates.WithLabelValues(outcome).Inc()
}

func (m *Metrics) GeofenceExit() {
	m.geofenceExits.Inc()
}

// ObserveRequest records one HTTP request. route is the matched mux pattern.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
