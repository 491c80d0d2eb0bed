//go:build gomock || generate

package mocklogging

import (
	"time"

	"github.com/scramblesuit/scramblesuit-go/logging"
)

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package internal -destination internal/tracer.go github.com/scramblesuit/scramblesuit-go/internal/mocks/logging Tracer"
type Tracer interface {
	TicketIssued(name logging.KeyName, issuedAt time.Time)
	TicketRedeemed(name logging.KeyName, age time.Duration, usedOldKey bool)
	TicketRejected(reason logging.RejectionReason)
	TicketKeysRotated(issuing logging.KeyName, accepted int)
	Close()
}
