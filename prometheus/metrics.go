package prometheus

import (
	"github.com/devbryan02/gestion-hostal-template/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	AuthErrorsCounter prometheus.Counter

	// Entity operation metrics
	RoomOperationsCounter       prometheus.CounterVec
	TenantOperationsCounter     prometheus.CounterVec
	OccupationOperationsCounter prometheus.CounterVec

	// Lifecycle metrics
	CheckOutsCounter        prometheus.Counter
	BookingConflictsCounter prometheus.Counter

	// Dashboard metrics
	StatsRequestsCounter prometheus.Counter
	MonthlyRevenueGauge  prometheus.Gauge
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	prefix := config.Metrics.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	AuthErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
	)

	RoomOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_room_operations_total",
			Help: "Total number of room operations",
		},
		[]string{"operation"},
	)

	TenantOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_tenant_operations_total",
			Help: "Total number of tenant operations",
		},
		[]string{"operation"},
	)

	OccupationOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_occupation_operations_total",
			Help: "Total number of occupation operations",
		},
		[]string{"operation"},
	)

	CheckOutsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_checkouts_total",
			Help: "Total number of completed check-outs",
		},
	)

	BookingConflictsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_booking_conflicts_total",
			Help: "Total number of bookings rejected because the room was already occupied",
		},
	)

	StatsRequestsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_stats_requests_total",
			Help: "Total number of dashboard statistics requests",
		},
	)

	MonthlyRevenueGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_monthly_revenue",
			Help: "Revenue of the current calendar month as of the last dashboard request",
		},
	)
}
