package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ybl"

var (
	once sync.Once

	reservations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_attempts_total",
			Help:      "Reservation and reschedule attempts by operation and outcome.",
		},
		[]string{"op", "outcome"},
	)

	cancellations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cancellations_total",
			Help:      "Cancellations by outcome.",
		},
		[]string{"outcome"},
	)

	slotQueries = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "slot_query_duration_seconds",
			Help:      "Latency of availability queries including the store read.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	storeRetries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_retries_total",
			Help:      "Automatic retries of store calls after a transient failure.",
		},
		[]string{"op"},
	)

	publishFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_failures_total",
			Help:      "Booking lifecycle events that could not be published.",
		},
	)
)

// Register registers metrics with the default registry (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(reservations, cancellations, slotQueries, storeRetries, publishFailures)
	})
}

func IncReservation(op, outcome string) {
	reservations.WithLabelValues(op, outcome).Inc()
}

func IncCancellation(outcome string) {
	cancellations.WithLabelValues(outcome).Inc()
}

func ObserveSlotQuery(d time.Duration) {
	slotQueries.Observe(d.Seconds())
}

func IncStoreRetry(op string) {
	storeRetries.WithLabelValues(op).Inc()
}

func IncPublishFailure() {
	publishFailures.Inc()
}
