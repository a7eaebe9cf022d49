// Package metrics provides Prometheus metrics collection for the pharmacy
// API. It exports HTTP metrics:
//   - http_request_total: Counter with method, path, and status labels
//   - http_request_duration_seconds: Histogram with method and path labels
//   - http_request_in_flight: Gauge for concurrent requests
//
// plus business metrics for the sales flow:
//   - purchases_created_total: Counter labelled by purchase type
//   - purchase_basket_size: Histogram of distinct medications per purchase
//
// All metrics are automatically registered with the Prometheus default
// registry during package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	RateLimiterBucketsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_buckets_total",
			Help: "Total number of rate limiter buckets (IPs seen in last ~5 minutes)",
		},
	)

	PurchasesCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "purchases_created_total",
			Help: "Purchases created, by purchase type",
		},
		[]string{"type"},
	)

	PurchaseBasketSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "purchase_basket_size",
			Help:    "Distinct medications per created purchase",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		},
	)
)

// RecordPurchaseCreated updates the sales metrics for one created
// purchase.
func RecordPurchaseCreated(purchaseType string, basketSize int) {
	PurchasesCreatedTotal.WithLabelValues(purchaseType).Inc()
	PurchaseBasketSize.Observe(float64(basketSize))
}

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(RateLimiterBucketsTotal)
	prometheus.MustRegister(PurchasesCreatedTotal)
	prometheus.MustRegister(PurchaseBasketSize)
}
