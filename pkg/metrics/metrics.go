// Package metrics provides Prometheus metrics for the notely service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "notely"

// Manager owns every collector exported by the service.
type Manager struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	usersRegistered prometheus.Counter
	loginFailures   prometheus.Counter
	notesCreated    prometheus.Counter
	notesDeleted    prometheus.Counter
	pictureUploads  *prometheus.CounterVec
}

var globalManager = NewManager(prometheus.NewRegistry()) //nolint:gochecknoglobals // process wide metrics

// NewManager registers the service collectors on registry.
func NewManager(registry *prometheus.Registry) *Manager {
	m := &Manager{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route, method and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		usersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "accounts",
			Name:      "registered_total",
			Help:      "Users registered.",
		}),
		loginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "accounts",
			Name:      "login_failures_total",
			Help:      "Rejected login attempts.",
		}),
		notesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notes",
			Name:      "created_total",
			Help:      "Notes created.",
		}),
		notesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notes",
			Name:      "deleted_total",
			Help:      "Notes deleted.",
		}),
		pictureUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "accounts",
			Name:      "picture_uploads_total",
			Help:      "Profile picture uploads by outcome.",
		}, []string{"outcome"}),
	}

	registry.MustRegister(
		m.httpRequests,
		m.httpRequestDuration,
		m.usersRegistered,
		m.loginFailures,
		m.notesCreated,
		m.notesDeleted,
		m.pictureUploads,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// GetRegistry returns the registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return globalManager.registry
}

// Handler serves the global registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(globalManager.registry, promhttp.HandlerOpts{})
}

func RecordHTTPRequest(route, method, status string, seconds float64) {
	globalManager.httpRequests.WithLabelValues(route, method, status).Inc()
	globalManager.httpRequestDuration.WithLabelValues(route, method, status).Observe(seconds)
}

func RecordUserRegistered() { globalManager.usersRegistered.Inc() }
func RecordLoginFailure()   { globalManager.loginFailures.Inc() }
func RecordNoteCreated()    { globalManager.notesCreated.Inc() }
func RecordNoteDeleted()    { globalManager.notesDeleted.Inc() }

// RecordPictureUpload counts picture updates; outcome is "stored", "cleared" or "rejected".
func RecordPictureUpload(outcome string) {
	globalManager.pictureUploads.WithLabelValues(outcome).Inc()
}
