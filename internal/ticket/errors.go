package ticket

import "errors"

// The reasons a blob presented for redemption is rejected. Callers may
// distinguish them for tracing, but must not reveal to the peer which check
// failed.
var (
	// ErrLength is returned if the blob doesn't have the exact ticket length.
	ErrLength = errors.New("invalid ticket length")
	// ErrKeyName is returned if the key name doesn't match. The blob was most
	// likely not issued by us.
	ErrKeyName = errors.New("key name mismatch")
	// ErrAuthentication is returned if the authenticator doesn't verify.
	ErrAuthentication = errors.New("ticket authentication failed")
	// ErrFormat is returned if an authenticated state record is malformed.
	ErrFormat = errors.New("malformed state record")
)
