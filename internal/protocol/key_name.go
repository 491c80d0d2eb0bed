package protocol

import (
	"fmt"
	"io"
)

// A KeyName identifies the key triple a ticket was issued under. It prefixes
// every wire ticket and lets a server recognize its own tickets before any
// cryptographic check runs. Key names are not secret.
type KeyName [KeyNameLength]byte

// GenerateKeyName generates a random key name using the provided entropy
// source. Names need to be unique, not unpredictable.
func GenerateKeyName(rand io.Reader) (KeyName, error) {
	var n KeyName
	if _, err := io.ReadFull(rand, n[:]); err != nil {
		return KeyName{}, err
	}
	return n, nil
}

// ParseKeyName interprets b as a key name.
// It returns an error if b is not exactly KeyNameLength bytes long.
func ParseKeyName(b []byte) (KeyName, error) {
	if len(b) != KeyNameLength {
		return KeyName{}, fmt.Errorf("invalid key name length: %d", len(b))
	}
	var n KeyName
	copy(n[:], b)
	return n, nil
}

// Bytes returns the key name as a byte slice.
func (n KeyName) Bytes() []byte { return n[:] }

func (n KeyName) String() string { return fmt.Sprintf("%x", n[:]) }
