// Package ticket implements the ScrambleSuit session ticket format.
//
// A session ticket hands the server's session state to the client as an
// encrypted and authenticated blob. Presenting the blob later resumes the
// session without the server having kept any per-client state. On the wire a
// ticket is the concatenation of the key name (16 bytes), the IV (16 bytes),
// the encrypted state record (48 bytes) and an HMAC-SHA256 tag (32 bytes)
// covering everything before it. Blobs are authenticated before any byte of
// the payload is decrypted.
package ticket

import (
	"bytes"

	"github.com/scramblesuit/scramblesuit-go/internal/protocol"
)

// Offsets of the ticket fields on the wire.
const (
	keyNameOffset = 0
	ivOffset      = keyNameOffset + protocol.KeyNameLength
	stateOffset   = ivOffset + protocol.IVLength
	macOffset     = stateOffset + protocol.StateLength
)

// A SessionTicket mints a single ticket. It bundles the key triple the
// ticket is protected with and the per-ticket IV. The IV must be fresh for
// every ticket.
type SessionTicket struct {
	keyName protocol.KeyName
	iv      [protocol.IVLength]byte
	aesKey  [protocol.TicketKeyLength]byte
	hmacKey [protocol.TicketKeyLength]byte
}

// NewSessionTicket creates a SessionTicket protected by the given key triple.
func NewSessionTicket(keyName protocol.KeyName, aesKey, hmacKey [protocol.TicketKeyLength]byte, iv [protocol.IVLength]byte) *SessionTicket {
	return &SessionTicket{
		keyName: keyName,
		iv:      iv,
		aesKey:  aesKey,
		hmacKey: hmacKey,
	}
}

// KeyName returns the name of the key triple the ticket is bound to.
func (t *SessionTicket) KeyName() protocol.KeyName { return t.keyName }

// Issue seals the state into a wire ticket.
func (t *SessionTicket) Issue(state *State) ([]byte, error) {
	record, err := state.Marshal()
	if err != nil {
		return nil, err
	}
	ciphertext, err := sealState(t.aesKey, t.iv, record)
	if err != nil {
		return nil, err
	}
	b := make([]byte, 0, protocol.TicketLength)
	b = append(b, t.keyName[:]...)
	b = append(b, t.iv[:]...)
	b = append(b, ciphertext...)
	return append(b, authenticate(t.hmacKey, b)...), nil
}

// Decrypt authenticates and decrypts a wire ticket.
//
// The key name comparison is a cheap test for "this could be one of our
// tickets", not a security check. The authenticator is verified before the
// ciphertext is touched. The returned error is always one of the Err values
// declared in this package.
func Decrypt(raw []byte, keyName protocol.KeyName, aesKey, hmacKey [protocol.TicketKeyLength]byte) (*State, error) {
	if len(raw) != protocol.TicketLength {
		return nil, ErrLength
	}
	if !bytes.Equal(raw[keyNameOffset:ivOffset], keyName.Bytes()) {
		return nil, ErrKeyName
	}
	if !verify(hmacKey, raw[:macOffset], raw[macOffset:]) {
		return nil, ErrAuthentication
	}
	var iv [protocol.IVLength]byte
	copy(iv[:], raw[ivOffset:stateOffset])
	record, err := openState(aesKey, iv, raw[stateOffset:macOffset])
	if err != nil {
		return nil, err
	}
	return parseState(record)
}
