// Package qlog records ticket events in a JSON format inspired by qlog.
package qlog

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/scramblesuit/scramblesuit-go/logging"

	"github.com/francoispqt/gojay"
)

const eventChanSize = 50

type tracer struct {
	w             io.WriteCloser
	referenceTime time.Time

	suffix     []byte
	events     chan event
	encodeErr  error
	runStopped chan struct{}
}

// NewTracer creates a tracer that records ticket events to w.
// The qlog is only complete after the tracer has been closed.
func NewTracer(w io.WriteCloser) *logging.Tracer {
	t := &tracer{
		w:             w,
		runStopped:    make(chan struct{}),
		events:        make(chan event, eventChanSize),
		referenceTime: time.Now(),
	}
	go t.run()
	return &logging.Tracer{
		TicketIssued: func(name logging.KeyName, issuedAt time.Time) {
			t.recordEvent(time.Now(), &eventTicketIssued{KeyName: name, IssuedAt: issuedAt})
		},
		TicketRedeemed: func(name logging.KeyName, age time.Duration, usedOldKey bool) {
			t.recordEvent(time.Now(), &eventTicketRedeemed{KeyName: name, Age: age, UsedOldKey: usedOldKey})
		},
		TicketRejected: func(reason logging.RejectionReason) {
			t.recordEvent(time.Now(), &eventTicketRejected{Trigger: reason})
		},
		TicketKeysRotated: func(issuing logging.KeyName, accepted int) {
			t.recordEvent(time.Now(), &eventTicketKeysRotated{Issuing: issuing, Accepted: accepted})
		},
		Close: t.close,
	}
}

func (t *tracer) run() {
	defer close(t.runStopped)
	buf := &bytes.Buffer{}
	enc := gojay.NewEncoder(buf)
	tl := &topLevel{
		traces: traces{
			{
				VantagePoint: vantagePoint{Type: "server"},
				CommonFields: commonFields{ReferenceTime: t.referenceTime},
				EventFields:  eventFields[:],
			},
		}}
	if err := enc.Encode(tl); err != nil {
		panic(fmt.Sprintf("qlog encoding into a bytes.Buffer failed: %s", err))
	}
	data := buf.Bytes()
	t.suffix = data[buf.Len()-4:]
	if _, err := t.w.Write(data[:buf.Len()-4]); err != nil {
		t.encodeErr = err
	}
	enc = gojay.NewEncoder(t.w)
	isFirst := true
	for ev := range t.events {
		if t.encodeErr != nil { // if encoding failed, just continue draining the event channel
			continue
		}
		if !isFirst {
			t.w.Write([]byte(","))
		}
		if err := enc.Encode(ev); err != nil {
			t.encodeErr = err
		}
		isFirst = false
	}
}

func (t *tracer) recordEvent(eventTime time.Time, details eventDetails) {
	t.events <- event{
		RelativeTime: eventTime.Sub(t.referenceTime),
		eventDetails: details,
	}
}

func (t *tracer) close() {
	if err := t.export(); err != nil {
		log.Printf("exporting qlog failed: %s\n", err)
	}
}

// export writes a qlog.
func (t *tracer) export() error {
	close(t.events)
	<-t.runStopped
	if t.encodeErr != nil {
		return t.encodeErr
	}
	if _, err := t.w.Write(t.suffix); err != nil {
		return err
	}
	return t.w.Close()
}
