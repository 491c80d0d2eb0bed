// Package logging defines the event interface used to observe ticket
// issuance and redemption.
// This package should not be considered stable.
package logging

import "time"

// A Tracer records events from a TicketGenerator. Individual callbacks may
// be nil; they must not block.
type Tracer struct {
	// TicketIssued is called whenever a new ticket is minted.
	TicketIssued func(name KeyName, issuedAt time.Time)
	// TicketRedeemed is called whenever a presented ticket is accepted.
	// usedOldKey reports that the ticket was protected by a key that is no
	// longer the issuing key.
	TicketRedeemed func(name KeyName, age time.Duration, usedOldKey bool)
	// TicketRejected is called whenever a presented blob is not usable.
	TicketRejected func(reason RejectionReason)
	// TicketKeysRotated is called whenever the set of acceptable keys
	// changes. issuing is the name of the key minting new tickets, accepted
	// the total number of keys accepted for redemption.
	TicketKeysRotated func(issuing KeyName, accepted int)
	// Close is called when the generator is closed.
	Close func()
}
