// Package metrics holds the prometheus collectors of the ledger.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	Debit  = "debit"
	Credit = "credit"
)

var (
	// Registry holds the ledger collectors
	Registry = prometheus.NewRegistry()

	commands = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "helpledger",
			Subsystem: "ledger",
			Name:      "commands_total",
			Help:      "Total number of ledger commands by outcome.",
		},
		[]string{"command", "outcome"},
	)

	commandDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "helpledger",
			Subsystem: "ledger",
			Name:      "command_duration_seconds",
			Help:      "Duration of ledger commands.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
		},
		[]string{"command"},
	)

	credits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "helpledger",
			Subsystem: "ledger",
			Name:      "credits_total",
			Help:      "Credit moved by committed commands.",
		},
		[]string{"direction"},
	)

	openRequests = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "helpledger",
			Subsystem: "ledger",
			Name:      "open_requests",
			Help:      "Help requests waiting for a helper.",
		},
	)

	notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "helpledger",
			Subsystem: "background",
			Name:      "notifications_total",
			Help:      "Notification tasks by kind and result.",
		},
		[]string{"kind", "success"},
	)
)

func init() {
	Registry.MustRegister(commands, commandDuration, credits, openRequests, notifications)
}

// ObserveCommand records one finished command
func ObserveCommand(command, outcome string, d time.Duration) {
	commands.WithLabelValues(command, outcome).Inc()
	commandDuration.WithLabelValues(command).Observe(d.Seconds())
}

// CreditMoved records credit taken (Debit) or paid (Credit) by a committed command
func CreditMoved(direction string, amount int64) {
	credits.WithLabelValues(direction).Add(float64(amount))
}

// SetOpenRequests resets the open requests gauge, at start up
func SetOpenRequests(n int) {
	openRequests.Set(float64(n))
}

// OpenRequestsChanged moves the open requests gauge by delta
func OpenRequestsChanged(delta int) {
	openRequests.Add(float64(delta))
}

// NotificationSent records a dispatched notification task
func NotificationSent(kind string, err error) {
	success := "true"
	if err != nil {
		success = "false"
	}
	notifications.WithLabelValues(kind, success).Inc()
}

// Handler serves the registry in the prometheus exposition format
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
