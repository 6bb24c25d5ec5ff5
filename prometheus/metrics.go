package prometheus

import (
	"contact-service/pkg/config"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Responses by status class (2xx, 4xx, 5xx)
	HttpStatusCategoryCounter *prometheus.CounterVec

	// Database operation metrics
	DbOperationDuration *prometheus.HistogramVec

	// Contact metrics
	ContactOperationsCounter *prometheus.CounterVec

	// Note metrics
	NoteOperationsCounter *prometheus.CounterVec

	// Preference metrics
	PreferenceWritesCounter *prometheus.CounterVec

	initOnce sync.Once
)

// InitMetrics initializes Prometheus metrics with configuration.
// Only the first call registers collectors; later calls are no-ops.
func InitMetrics(config *config.Config) {
	initOnce.Do(func() {
		register(promauto.With(prometheus.DefaultRegisterer), config.Metrics.Prefix)
	})
}

func register(factory promauto.Factory, prefix string) {
	HttpRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HttpStatusCategoryCounter = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_status_category_total",
			Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
		},
		[]string{"category", "method", "path"},
	)

	DbOperationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	ContactOperationsCounter = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_contact_operations_total",
			Help: "Total number of contact operations",
		},
		[]string{"operation", "result"},
	)

	NoteOperationsCounter = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_note_operations_total",
			Help: "Total number of note operations",
		},
		[]string{"operation", "result"},
	)

	PreferenceWritesCounter = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_preference_writes_total",
			Help: "Total number of preference writes by theme",
		},
		[]string{"theme"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		if DbOperationDuration == nil {
			return
		}
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordContactOperation increments the counter for contact operations
func RecordContactOperation(operation string, err error) {
	if ContactOperationsCounter == nil {
		return
	}
	ContactOperationsCounter.WithLabelValues(operation, result(err)).Inc()
}

// RecordNoteOperation increments the counter for note operations
func RecordNoteOperation(operation string, err error) {
	if NoteOperationsCounter == nil {
		return
	}
	NoteOperationsCounter.WithLabelValues(operation, result(err)).Inc()
}

// RecordPreferenceWrite increments the counter for preference writes
func RecordPreferenceWrite(theme string) {
	if PreferenceWritesCounter == nil {
		return
	}
	PreferenceWritesCounter.WithLabelValues(theme).Inc()
}

// StatusCategory returns the status class label for an HTTP status code
func StatusCategory(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 300 && status < 400:
		return "3xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500 && status < 600:
		return "5xx"
	}
	return ""
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
