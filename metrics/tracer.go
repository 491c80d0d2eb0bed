// Package metrics exposes ticket events as Prometheus metrics.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/scramblesuit/scramblesuit-go/logging"
)

const metricNamespace = "scramblesuit"

var (
	ticketsIssued = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "tickets_issued_total",
			Help:      "Session Tickets Issued",
		},
	)
	ticketsRedeemed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "tickets_redeemed_total",
			Help:      "Session Tickets Redeemed",
		},
		[]string{"key"},
	)
	ticketsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "tickets_rejected_total",
			Help:      "Session Tickets Rejected",
		},
		[]string{"reason"},
	)
	keyRotations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "ticket_key_rotations_total",
			Help:      "Ticket Key Rotations",
		},
	)
)

// NewTracer creates a new tracer using the default Prometheus registerer.
// It can be set on the Tracer field of the Config.
func NewTracer() *logging.Tracer {
	return NewTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// NewTracerWithRegisterer creates a new tracer using a given Prometheus registerer.
func NewTracerWithRegisterer(registerer prometheus.Registerer) *logging.Tracer {
	for _, c := range [...]prometheus.Collector{
		ticketsIssued,
		ticketsRedeemed,
		ticketsRejected,
		keyRotations,
	} {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}

	return &logging.Tracer{
		TicketIssued: func(logging.KeyName, time.Time) {
			ticketsIssued.Inc()
		},
		TicketRedeemed: func(_ logging.KeyName, _ time.Duration, usedOldKey bool) {
			key := "issuing"
			if usedOldKey {
				key = "previous"
			}
			ticketsRedeemed.WithLabelValues(key).Inc()
		},
		TicketRejected: func(reason logging.RejectionReason) {
			ticketsRejected.WithLabelValues(reason.String()).Inc()
		},
		TicketKeysRotated: func(logging.KeyName, int) {
			keyRotations.Inc()
		},
	}
}
