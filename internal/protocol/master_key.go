package protocol

import (
	"fmt"
	"io"
)

// A MasterKey is the shared secret carried inside a session ticket. Client
// and server derive their session keys from it when a ticket is redeemed.
type MasterKey [MasterKeyLength]byte

// GenerateMasterKey generates a master key using the provided entropy source.
func GenerateMasterKey(rand io.Reader) (MasterKey, error) {
	var k MasterKey
	if _, err := io.ReadFull(rand, k[:]); err != nil {
		return MasterKey{}, err
	}
	return k, nil
}

// ParseMasterKey interprets b as a master key.
// It returns an error if b is not exactly MasterKeyLength bytes long.
func ParseMasterKey(b []byte) (MasterKey, error) {
	if len(b) != MasterKeyLength {
		return MasterKey{}, fmt.Errorf("invalid master key length: %d", len(b))
	}
	var k MasterKey
	copy(k[:], b)
	return k, nil
}

// Bytes returns the master key as a byte slice.
func (k MasterKey) Bytes() []byte { return k[:] }

// String redacts the key material. Master keys must not end up in logs.
func (k MasterKey) String() string { return "(redacted)" }
