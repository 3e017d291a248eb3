package artwork

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for artwork page requests.
//
//nolint:gochecknoglobals // promauto registers collectors once per process.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artable_requests_total",
		Help: "Total artworks page requests by HTTP status or failure class",
	}, []string{"status"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "artable_request_duration_seconds",
		Help:    "Artworks page request duration in seconds",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
	})

	loadOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artable_load_outcomes_total",
		Help: "Page-load cycles by terminal outcome",
	}, []string{"outcome"})
)

func observeStatus(code int) {
	requestsTotal.WithLabelValues(strconv.Itoa(code)).Inc()
}

func observeFailure(class ErrorClass) {
	requestsTotal.WithLabelValues(string(class)).Inc()
}

// RecordOutcome counts a finished page-load cycle.
func RecordOutcome(o Outcome) {
	loadOutcomesTotal.WithLabelValues(string(o)).Inc()
}
