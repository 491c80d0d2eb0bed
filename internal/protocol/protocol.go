package protocol

import "time"

// A wire ticket is laid out as: key name, IV, encrypted state record,
// authenticator. All fields have fixed lengths.
const (
	// KeyNameLength is the length of the key name prefixing a ticket.
	KeyNameLength = 16
	// IVLength is the length of the AES-CBC initialization vector.
	IVLength = 16
	// TicketKeyLength is the length of the AES key and of the HMAC key of a
	// ticket key triple.
	TicketKeyLength = 16
	// MasterKeyLength is the length of the master key carried inside a ticket.
	MasterKeyLength = 16
	// TimestampLength is the length of the ASCII encoded issue date.
	TimestampLength = 10
	// IdentifierLength is the length of the Identifier.
	IdentifierLength = 18
	// PaddingLength is the number of zero bytes appended to a state record.
	PaddingLength = 4
	// StateLength is the length of a serialized state record. Identifier and
	// padding sizes are chosen so that it is a multiple of the AES block size.
	StateLength = TimestampLength + IdentifierLength + MasterKeyLength + PaddingLength
	// MACLength is the length of the HMAC-SHA256 authenticator.
	MACLength = 32
	// TicketLength is the length of a wire ticket.
	TicketLength = KeyNameLength + IVLength + StateLength + MACLength
)

// Identifier tags every state record. A decrypted record that doesn't carry
// this exact string is not one of our tickets.
const Identifier = "ScrambleSuitTicket"

// MaxIssueDate is the largest Unix timestamp that fits the fixed-width
// decimal issue date field.
const MaxIssueDate = 9999999999

// DefaultTicketLifetime is the time span after issuance during which a
// ticket is redeemable. It matches the lifetime commonly used for TLS
// session tickets.
const DefaultTicketLifetime = 7 * 24 * time.Hour
