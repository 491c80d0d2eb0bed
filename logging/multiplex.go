package logging

import "time"

// NewMultiplexedTracer creates a new tracer that multiplexes events to
// multiple tracers.
func NewMultiplexedTracer(tracers ...*Tracer) *Tracer {
	if len(tracers) == 0 {
		return nil
	}
	if len(tracers) == 1 {
		return tracers[0]
	}
	return &Tracer{
		TicketIssued: func(name KeyName, issuedAt time.Time) {
			for _, t := range tracers {
				if t.TicketIssued != nil {
					t.TicketIssued(name, issuedAt)
				}
			}
		},
		TicketRedeemed: func(name KeyName, age time.Duration, usedOldKey bool) {
			for _, t := range tracers {
				if t.TicketRedeemed != nil {
					t.TicketRedeemed(name, age, usedOldKey)
				}
			}
		},
		TicketRejected: func(reason RejectionReason) {
			for _, t := range tracers {
				if t.TicketRejected != nil {
					t.TicketRejected(reason)
				}
			}
		},
		TicketKeysRotated: func(issuing KeyName, accepted int) {
			for _, t := range tracers {
				if t.TicketKeysRotated != nil {
					t.TicketKeysRotated(issuing, accepted)
				}
			}
		},
		Close: func() {
			for _, t := range tracers {
				if t.Close != nil {
					t.Close()
				}
			}
		},
	}
}
