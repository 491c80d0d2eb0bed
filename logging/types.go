package logging

import (
	"github.com/scramblesuit/scramblesuit-go/internal/protocol"
)

// A KeyName names a ticket key triple.
type KeyName = protocol.KeyName

// A RejectionReason is the reason a presented blob was not redeemable.
// Rejections are only ever distinguished locally; on the wire every
// rejection looks the same.
type RejectionReason uint8

const (
	// RejectionReasonLength means the blob didn't have the ticket length.
	RejectionReasonLength RejectionReason = iota
	// RejectionReasonKeyName means the key name matched no acceptable key.
	RejectionReasonKeyName
	// RejectionReasonAuthentication means the authenticator didn't verify.
	RejectionReasonAuthentication
	// RejectionReasonFormat means the authenticated state didn't parse.
	RejectionReasonFormat
	// RejectionReasonExpired means the ticket was authentic but outside its
	// lifetime.
	RejectionReasonExpired
)

func (r RejectionReason) String() string {
	switch r {
	case RejectionReasonLength:
		return "length"
	case RejectionReasonKeyName:
		return "key_name"
	case RejectionReasonAuthentication:
		return "authentication"
	case RejectionReasonFormat:
		return "format"
	case RejectionReasonExpired:
		return "expired"
	default:
		panic("unknown rejection reason")
	}
}
