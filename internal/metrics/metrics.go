package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comandas_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "comandas_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "path", "status"},
	)

	operations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comandas_operations_total",
			Help: "Total number of domain operations by entity, operation and outcome",
		},
		[]string{"entity", "operation", "status"},
	)

	eventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comandas_events_published_total",
			Help: "Order events handed to the broker",
		},
		[]string{"type", "status"},
	)
)

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "error"
}

// RecordOperation counts one domain operation, e.g. ("order", "create", true).
func RecordOperation(entity, operation string, success bool) {
	operations.WithLabelValues(entity, operation, outcome(success)).Inc()
}

func RecordEvent(eventType string, success bool) {
	eventsPublished.WithLabelValues(eventType, outcome(success)).Inc()
}
