package gateway

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "event_signup",
		Subsystem: "gateway",
		Name:      "requests_total",
		Help:      "Round trips to the signup endpoint by action and outcome.",
	}, []string{"action", "outcome"})
	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "event_signup",
		Subsystem: "gateway",
		Name:      "request_duration_seconds",
		Help:      "Latency of round trips to the signup endpoint.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action"})
)

func init() {
	prometheus.MustRegister(requestCounter, requestDuration)
}

func observe(action string, started time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	requestCounter.WithLabelValues(action, outcome).Inc()
	requestDuration.WithLabelValues(action).Observe(time.Since(started).Seconds())
}
