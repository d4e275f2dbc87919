package upstream

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of calls made to the Celler Hut API",
		},
		[]string{"method", "outcome"},
	)

	upstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Duration of calls made to the Celler Hut API in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// outcome labels a finished call: the status code when a response arrived,
// otherwise the transport failure kind.
func outcome(status int, err error) string {
	switch {
	case status > 0:
		return strconv.Itoa(status)
	case err == nil:
		return "ok"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrNetworkUnreachable):
		return "network"
	default:
		return "error"
	}
}

func observe(method string, start time.Time, status int, err error) {
	upstreamRequestsTotal.WithLabelValues(method, outcome(status, err)).Inc()
	upstreamRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}
