//go:build !gomock && !generate

package mocklogging

import (
	"time"

	"github.com/scramblesuit/scramblesuit-go/internal/mocks/logging/internal"
	"github.com/scramblesuit/scramblesuit-go/logging"

	"go.uber.org/mock/gomock"
)

type MockTracer = internal.MockTracer

func NewMockTracer(ctrl *gomock.Controller) (*logging.Tracer, *MockTracer) {
	t := internal.NewMockTracer(ctrl)
	return &logging.Tracer{
		TicketIssued: func(name logging.KeyName, issuedAt time.Time) {
			t.TicketIssued(name, issuedAt)
		},
		TicketRedeemed: func(name logging.KeyName, age time.Duration, usedOldKey bool) {
			t.TicketRedeemed(name, age, usedOldKey)
		},
		TicketRejected: func(reason logging.RejectionReason) {
			t.TicketRejected(reason)
		},
		TicketKeysRotated: func(issuing logging.KeyName, accepted int) {
			t.TicketKeysRotated(issuing, accepted)
		},
		Close: t.Close,
	}, t
}
