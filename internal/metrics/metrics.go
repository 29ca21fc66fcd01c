package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Reminder dispatch outcomes, labelled by dunning level and result.
	ReminderDispatchCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dunning_reminder_dispatch_count",
			Help: "Total number of reminder dispatch attempts",
		},
		[]string{"level", "status"}, // status: sent, config_missing, recipient_missing, delivery_failed, persistence_failed
	)

	// Email provider call latency (seconds)
	EmailSendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dunning_email_send_duration_seconds",
			Help:    "Email provider call duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~40s
		},
		[]string{"status"},
	)

	// Outbox recovery outcomes
	OutboxRecoveryCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dunning_outbox_recovery_count",
			Help: "Total number of outbox entries handled by the recovery sweep",
		},
		[]string{"from_state", "result"}, // result: finalized, abandoned, failed
	)
)

// RecordReminderDispatch increments the dispatch counter for a level/status pair.
func RecordReminderDispatch(level, status string) {
	ReminderDispatchCount.WithLabelValues(level, status).Inc()
}

// RecordEmailSendDuration records one email provider call.
func RecordEmailSendDuration(status string, duration time.Duration) {
	EmailSendDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// RecordOutboxRecovery increments the recovery counter.
func RecordOutboxRecovery(fromState, result string) {
	OutboxRecoveryCount.WithLabelValues(fromState, result).Inc()
}
