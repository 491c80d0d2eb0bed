// Package scramblesuit implements the session ticket mechanism of the
// ScrambleSuit pluggable transport. A server hands its client an encrypted
// and authenticated ticket holding the connection master key. On a later
// connection the client presents the ticket and both sides derive the
// session keys from the contained master key, skipping the UniformDH
// handshake.
package scramblesuit

import (
	"crypto/rand"
	"io"
	"log/slog"
	"time"

	"github.com/scramblesuit/scramblesuit-go/internal/protocol"
	"github.com/scramblesuit/scramblesuit-go/logging"
)

// A MasterKey is the shared secret transported inside a session ticket.
type MasterKey = protocol.MasterKey

// A KeyName identifies the ticket key triple a ticket was issued with.
type KeyName = protocol.KeyName

// TicketLength is the length of an encoded session ticket.
const TicketLength = protocol.TicketLength

// DefaultTicketLifetime is the time span after which issued tickets are no
// longer accepted.
const DefaultTicketLifetime = protocol.DefaultTicketLifetime

// GenerateMasterKey creates a fresh master key, reading randomness from rng.
// If rng is nil, crypto/rand is used.
func GenerateMasterKey(rng io.Reader) (MasterKey, error) {
	if rng == nil {
		rng = rand.Reader
	}
	return protocol.GenerateMasterKey(rng)
}

// ParseMasterKey interprets b as a master key.
func ParseMasterKey(b []byte) (MasterKey, error) {
	return protocol.ParseMasterKey(b)
}

// A ResumedSession is the result of redeeming a valid session ticket.
type ResumedSession struct {
	// MasterKey is the master key the ticket was issued for.
	MasterKey MasterKey
	// IssuedAt is the time the ticket was issued, at second granularity.
	IssuedAt time.Time
	// UsedOldKey says whether the ticket was encrypted with an older key
	// still accepted for redemption. The server should hand the client a
	// fresh ticket in that case.
	UsedOldKey bool
}

// A ClientTicket is a ticket received from a server, waiting to be redeemed.
type ClientTicket struct {
	// Ticket is the wire ticket to present to the server.
	Ticket []byte
	// MasterKey is the master key the ticket was issued for.
	MasterKey MasterKey
	// ReceivedAt is the time the ticket was handed out.
	ReceivedAt time.Time
}

// A TicketStore is a per-server cache of tickets received from servers.
type TicketStore interface {
	// Pop searches for a ticket cached for serverAddress.
	// A popped ticket is removed from the cache; presenting the same ticket
	// twice would let an observer link the two connections.
	Pop(serverAddress string) *ClientTicket

	// Put adds a ticket for serverAddress to the cache.
	Put(serverAddress string, ticket *ClientTicket)
}

// Config contains the configuration of a TicketGenerator.
type Config struct {
	// Rand provides the randomness for ticket encryption.
	// If nil, crypto/rand is used.
	Rand io.Reader
	// Time returns the current time, used for the issue date of new tickets
	// and the expiry check on redemption. If nil, time.Now is used.
	Time func() time.Time
	// TicketLifetime is the time span during which an issued ticket is
	// accepted. If zero, DefaultTicketLifetime is used.
	TicketLifetime time.Duration
	// Tracer is notified of ticket events.
	Tracer *logging.Tracer
	// Logger is the slog.Logger the generator logs to.
	// If nil, logging is configured from the SCRAMBLESUIT_LOG_LEVEL
	// environment variable.
	Logger *slog.Logger
}
