package ticket

import (
	"fmt"
	"strconv"
	"time"

	"github.com/scramblesuit/scramblesuit-go/internal/protocol"
)

// Field offsets within a serialized state record.
const (
	timestampOffset  = 0
	identifierOffset = timestampOffset + protocol.TimestampLength
	masterKeyOffset  = identifierOffset + protocol.IdentifierLength
	paddingOffset    = masterKeyOffset + protocol.MasterKeyLength
)

// A State is the protocol state carried inside a session ticket. It is
// everything the server needs to resume a session: the master key the
// session keys are derived from, and the time the ticket was issued.
type State struct {
	MasterKey protocol.MasterKey
	IssuedAt  time.Time
}

// Marshal serializes the state into its fixed-length record: the issue date
// as 10 ASCII digits, the identifier, the master key and 4 bytes of zero
// padding. It returns an error if the issue date doesn't fit the timestamp
// field.
func (s *State) Marshal() ([]byte, error) {
	issueDate := s.IssuedAt.Unix()
	if issueDate < 0 || issueDate > protocol.MaxIssueDate {
		return nil, fmt.Errorf("issue date out of range: %d", issueDate)
	}
	b := make([]byte, protocol.StateLength)
	copy(b[timestampOffset:], fmt.Sprintf("%010d", issueDate))
	copy(b[identifierOffset:], protocol.Identifier)
	copy(b[masterKeyOffset:], s.MasterKey.Bytes())
	// the padding bytes stay zero
	return b, nil
}

// parseState parses a decrypted state record. Records that don't carry the
// exact identifier are rejected.
func parseState(b []byte) (*State, error) {
	if len(b) != protocol.StateLength {
		return nil, fmt.Errorf("%w: invalid state length %d", ErrFormat, len(b))
	}
	if string(b[identifierOffset:masterKeyOffset]) != protocol.Identifier {
		return nil, fmt.Errorf("%w: invalid identifier", ErrFormat)
	}
	issueDate, err := parseIssueDate(b[timestampOffset:identifierOffset])
	if err != nil {
		return nil, err
	}
	masterKey, err := protocol.ParseMasterKey(b[masterKeyOffset:paddingOffset])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFormat, err)
	}
	return &State{MasterKey: masterKey, IssuedAt: time.Unix(issueDate, 0)}, nil
}

// parseIssueDate parses the fixed-width decimal issue date.
// strconv.ParseInt would also accept a leading sign, so the digits are
// checked explicitly.
func parseIssueDate(b []byte) (int64, error) {
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: invalid issue date", ErrFormat)
		}
	}
	return strconv.ParseInt(string(b), 10, 64)
}

// IsValid reports whether a ticket issued at s.IssuedAt is still redeemable
// at now. Tickets from the future are invalid, as are tickets older than
// lifetime. The comparison has second granularity, matching the resolution
// of the issue date field.
func (s *State) IsValid(now time.Time, lifetime time.Duration) bool {
	age := now.Unix() - s.IssuedAt.Unix()
	return age >= 0 && age <= int64(lifetime/time.Second)
}
