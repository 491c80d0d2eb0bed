package qlog

import (
	"time"

	"github.com/scramblesuit/scramblesuit-go/logging"

	"github.com/francoispqt/gojay"
)

var eventFields = [4]string{"time", "category", "event", "data"}

type events []event

var _ gojay.MarshalerJSONArray = events{}

func (e events) IsNil() bool { return e == nil }

func (e events) MarshalJSONArray(enc *gojay.Encoder) {
	for _, ev := range e {
		enc.Array(ev)
	}
}

type eventDetails interface {
	Category() category
	Name() string
	gojay.MarshalerJSONObject
}

type event struct {
	RelativeTime time.Duration
	eventDetails
}

var _ gojay.MarshalerJSONArray = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONArray(enc *gojay.Encoder) {
	enc.Float64(milliseconds(e.RelativeTime))
	enc.String(e.Category().String())
	enc.String(e.Name())
	enc.Object(e.eventDetails)
}

func milliseconds(dur time.Duration) float64 { return float64(dur.Nanoseconds()) / 1e6 }

type eventTicketIssued struct {
	KeyName  logging.KeyName
	IssuedAt time.Time
}

var _ eventDetails = &eventTicketIssued{}

func (e eventTicketIssued) Category() category { return categoryTicket }
func (e eventTicketIssued) Name() string       { return "ticket_issued" }
func (e eventTicketIssued) IsNil() bool        { return false }

func (e eventTicketIssued) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("key_name", e.KeyName.String())
	enc.Int64Key("issue_date", e.IssuedAt.Unix())
}

type eventTicketRedeemed struct {
	KeyName    logging.KeyName
	Age        time.Duration
	UsedOldKey bool
}

var _ eventDetails = &eventTicketRedeemed{}

func (e eventTicketRedeemed) Category() category { return categoryTicket }
func (e eventTicketRedeemed) Name() string       { return "ticket_redeemed" }
func (e eventTicketRedeemed) IsNil() bool        { return false }

func (e eventTicketRedeemed) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("key_name", e.KeyName.String())
	enc.FloatKey("age", milliseconds(e.Age))
	enc.BoolKey("used_old_key", e.UsedOldKey)
}

type eventTicketRejected struct {
	Trigger logging.RejectionReason
}

var _ eventDetails = &eventTicketRejected{}

func (e eventTicketRejected) Category() category { return categoryTicket }
func (e eventTicketRejected) Name() string       { return "ticket_rejected" }
func (e eventTicketRejected) IsNil() bool        { return false }

func (e eventTicketRejected) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("trigger", e.Trigger.String())
}

type eventTicketKeysRotated struct {
	Issuing  logging.KeyName
	Accepted int
}

var _ eventDetails = &eventTicketKeysRotated{}

func (e eventTicketKeysRotated) Category() category { return categoryKey }
func (e eventTicketKeysRotated) Name() string       { return "keys_rotated" }
func (e eventTicketKeysRotated) IsNil() bool        { return false }

func (e eventTicketKeysRotated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("key_name", e.Issuing.String())
	enc.IntKey("accepted_keys", e.Accepted)
}
