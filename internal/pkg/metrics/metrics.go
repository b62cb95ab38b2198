// internal/pkg/metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// CircuitBreakerState tracks circuit breaker state (0=closed, 1=open, 2=half-open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"circuit_name"},
	)

	// CircuitBreakerFailures tracks calls that failed through a breaker
	CircuitBreakerFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_failures_total",
			Help: "Total number of circuit breaker failures",
		},
		[]string{"circuit_name"},
	)

	// WardrobeUnits reports unit counts by state (total, available, in_laundry)
	WardrobeUnits = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wardrobe_units",
			Help: "Number of clothing units by state",
		},
		[]string{"state"},
	)

	// ActiveBatches reports batches currently at the laundry
	ActiveBatches = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wardrobe_active_batches",
			Help: "Number of laundry batches not yet returned",
		},
	)

	// PersistenceFailures counts failed writes to the durable store
	PersistenceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_persistence_failures_total",
			Help: "Total number of failed durable store writes",
		},
		[]string{"key"},
	)

	// BackupsTotal counts backup runs by outcome
	BackupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_backups_total",
			Help: "Total number of backup exports",
		},
		[]string{"status"},
	)
)

// RecordInventory publishes the current wardrobe totals.
func RecordInventory(total, available, inLaundry, batches int) {
	WardrobeUnits.WithLabelValues("total").Set(float64(total))
	WardrobeUnits.WithLabelValues("available").Set(float64(available))
	WardrobeUnits.WithLabelValues("in_laundry").Set(float64(inLaundry))
	ActiveBatches.Set(float64(batches))
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
