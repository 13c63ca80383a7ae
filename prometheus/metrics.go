package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	// HTTP request counter by endpoint and status
	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itafest_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)

	// Entity lifecycle counter
	EntityOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itafest_entity_operations_total",
			Help: "Total number of entity lifecycle operations",
		},
		[]string{"entity", "operation"}, // operation is "create", "update" or "delete"
	)

	// Push delivery counter
	PushDeliveryCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itafest_push_deliveries_total",
			Help: "Total number of push notification delivery attempts",
		},
		[]string{"outcome"}, // outcome is "delivered", "rejected" or "error"
	)
)

// Histogram metrics
var (
	// Request duration histogram
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "itafest_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)

	// Database operation duration histogram
	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "itafest_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestCounter)
	prometheus.MustRegister(EntityOperationCounter)
	prometheus.MustRegister(PushDeliveryCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(DBOperationDuration)
}

// GetPrometheusHandler returns the handler serving the metrics endpoint
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operation string) func(time.Time) {
	return func(start time.Time) {
		DBOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

// RecordEntityOperation increments the counter for one entity lifecycle operation
func RecordEntityOperation(entity, operation string) {
	EntityOperationCounter.WithLabelValues(entity, operation).Inc()
}

// RecordPushDelivery increments the push delivery counter with the given outcome
func RecordPushDelivery(outcome string) {
	PushDeliveryCounter.WithLabelValues(outcome).Inc()
}
