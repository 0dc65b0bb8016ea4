package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"time"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "endpoint", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)
	cartMutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "Total number of cart mutations by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)
	promoApplicationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promo_applications_total",
			Help: "Total number of promo code applications by outcome.",
		},
		[]string{"outcome"},
	)
	suggestionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "suggestion_lookup_duration_seconds",
			Help:    "Histogram of search suggestion lookup durations.",
			Buckets: []float64{0.05, 0.1, 0.3, 0.5, 1, 2},
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(cartMutationsTotal)
	prometheus.MustRegister(promoApplicationsTotal)
	prometheus.MustRegister(suggestionDuration)
}

// RecordRequest records metrics for a finished HTTP request.
func RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// RecordCartMutation records a cart operation (add, update, remove) and whether
// it was accepted or rejected.
func RecordCartMutation(operation string, accepted bool) {
	outcome := "accepted"
	if !accepted {
		outcome = "rejected"
	}
	cartMutationsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordPromoApplication records a promo code application attempt.
func RecordPromoApplication(outcome string) {
	promoApplicationsTotal.WithLabelValues(outcome).Inc()
}

// RecordSuggestionLookup records the duration of one suggestion lookup.
func RecordSuggestionLookup(duration time.Duration) {
	suggestionDuration.Observe(duration.Seconds())
}

func classifyStatus(statusCode int) string {
	if statusCode >= 200 && statusCode < 300 {
		return "2xx"
	} else if statusCode >= 300 && statusCode < 400 {
		return "3xx"
	} else if statusCode >= 400 && statusCode < 500 {
		return "4xx"
	} else if statusCode >= 500 && statusCode < 600 {
		return "5xx"
	}
	return "unknown"
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
