package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters incremented by the handlers; exposed on /metrics.
var (
	CheckinsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "edutrack_checkins_total",
		Help: "Number of bus check-ins recorded.",
	})

	DonationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "edutrack_donations_created_total",
		Help: "Number of donation campaigns created.",
	})

	MessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "edutrack_messages_sent_total",
		Help: "Number of community messages sent.",
	})
)
