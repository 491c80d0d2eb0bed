package scramblesuit

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/scramblesuit/scramblesuit-go/internal/protocol"
)

// ticketKeyBlockLength is the amount of key material in a TicketKey.
const ticketKeyBlockLength = protocol.KeyNameLength + 2*protocol.TicketKeyLength

// A TicketKey is the key triple used to issue and redeem session tickets:
// a public key name, an AES-128 key and an HMAC-SHA256 key.
type TicketKey struct {
	name    protocol.KeyName
	aesKey  [protocol.TicketKeyLength]byte
	hmacKey [protocol.TicketKeyLength]byte
}

// NewTicketKey generates a new ticket key, reading randomness from rng.
// If rng is nil, crypto/rand is used.
func NewTicketKey(rng io.Reader) (TicketKey, error) {
	if rng == nil {
		rng = rand.Reader
	}
	var key TicketKey
	name, err := protocol.GenerateKeyName(rng)
	if err != nil {
		return TicketKey{}, fmt.Errorf("scramblesuit: generating key name: %w", err)
	}
	key.name = name
	if _, err := io.ReadFull(rng, key.aesKey[:]); err != nil {
		return TicketKey{}, fmt.Errorf("scramblesuit: generating AES key: %w", err)
	}
	if _, err := io.ReadFull(rng, key.hmacKey[:]); err != nil {
		return TicketKey{}, fmt.Errorf("scramblesuit: generating HMAC key: %w", err)
	}
	return key, nil
}

// TicketKeyFromBytes constructs a ticket key from a block of key material,
// laid out as key name, AES key, HMAC key.
func TicketKeyFromBytes(b [ticketKeyBlockLength]byte) TicketKey {
	var key TicketKey
	copy(key.name[:], b[:protocol.KeyNameLength])
	copy(key.aesKey[:], b[protocol.KeyNameLength:protocol.KeyNameLength+protocol.TicketKeyLength])
	copy(key.hmacKey[:], b[protocol.KeyNameLength+protocol.TicketKeyLength:])
	return key
}

// TicketKeyFromSecret derives a ticket key from secret using HKDF.
// Servers configured with the same secret redeem each other's tickets.
func TicketKeyFromSecret(secret []byte) (TicketKey, error) {
	r := hkdf.New(sha256.New, secret, nil, []byte("scramblesuit ticket key"))
	var b [ticketKeyBlockLength]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return TicketKey{}, fmt.Errorf("scramblesuit: deriving ticket key: %w", err)
	}
	return TicketKeyFromBytes(b), nil
}

// Name returns the key name stamped on tickets issued with this key.
func (k TicketKey) Name() KeyName { return k.name }

// Bytes returns the key material in the layout expected by TicketKeyFromBytes.
// The returned block contains secret key material.
func (k TicketKey) Bytes() [ticketKeyBlockLength]byte {
	var b [ticketKeyBlockLength]byte
	copy(b[:protocol.KeyNameLength], k.name[:])
	copy(b[protocol.KeyNameLength:], k.aesKey[:])
	copy(b[protocol.KeyNameLength+protocol.TicketKeyLength:], k.hmacKey[:])
	return b
}

// String only reveals the key name, not the key material.
func (k TicketKey) String() string {
	return "TicketKey(" + k.name.String() + ")"
}
