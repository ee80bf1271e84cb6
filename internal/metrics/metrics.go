// Package metrics holds the prometheus collectors shared by the storage
// adapter and the HTTP server.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dsec"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var (
	mu       sync.Mutex
	registry *prometheus.Registry

	// Enabled controls whether collectors are registered. Observations on a
	// disabled registry are accepted and dropped.
	Enabled = true

	StoreOperationsTotal          *prometheus.CounterVec
	StoreOperationDurationSeconds *prometheus.HistogramVec
	HTTPRequestsTotal             *prometheus.CounterVec
	HTTPRequestDurationSeconds    *prometheus.HistogramVec
	AppsTotal                     prometheus.Gauge
)

func initMetrics() {
	StoreOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Total number of storage unit operations",
		},
		[]string{"operation", "status"},
	)

	StoreOperationDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_duration_seconds",
			Help:      "Duration of storage unit operations in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
		[]string{"operation"},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	AppsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "apps_total",
			Help:      "Number of apps found by the last registry scan",
		},
	)
}

// Init builds the registry on first use and returns it.
func Init() *prometheus.Registry {
	mu.Lock()
	defer mu.Unlock()

	if registry != nil {
		return registry
	}

	initMetrics()
	registry = prometheus.NewRegistry()
	if !Enabled {
		return registry
	}

	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(
		StoreOperationsTotal,
		StoreOperationDurationSeconds,
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		AppsTotal,
	)

	return registry
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Init(), promhttp.HandlerOpts{})
}

func ObserveStoreOperation(operation string, duration time.Duration, err error) {
	Init()

	status := StatusSuccess
	if err != nil {
		status = StatusError
	}

	StoreOperationsTotal.WithLabelValues(operation, status).Inc()
	StoreOperationDurationSeconds.WithLabelValues(operation).Observe(duration.Seconds())
}

func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	Init()

	if route == "" {
		route = "unmatched"
	}

	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}

func SetAppsTotal(count int) {
	Init()
	AppsTotal.Set(float64(count))
}
