package qlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"time"

	"github.com/scramblesuit/scramblesuit-go/internal/protocol"
	"github.com/scramblesuit/scramblesuit-go/logging"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type nopWriteCloserImpl struct{ io.Writer }

func (nopWriteCloserImpl) Close() error { return nil }

func nopWriteCloser(w io.Writer) io.WriteCloser {
	return &nopWriteCloserImpl{Writer: w}
}

type limitedWriter struct {
	io.WriteCloser
	N       int
	written int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.N {
		return 0, errors.New("writer full")
	}
	n, err := w.WriteCloser.Write(p)
	w.written += n
	return n, err
}

type entry struct {
	Time     time.Time
	Category string
	Name     string
	Event    map[string]interface{}
}

var _ = Describe("Tracing", func() {
	var (
		tracer *logging.Tracer
		buf    *bytes.Buffer
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		tracer = NewTracer(nopWriteCloser(buf))
	})

	It("exports a trace that has the right metadata", func() {
		tracer.Close()

		m := make(map[string]interface{})
		Expect(json.Unmarshal(buf.Bytes(), &m)).To(Succeed())
		Expect(m).To(HaveKeyWithValue("qlog_version", "draft-02-wip"))
		Expect(m).To(HaveKey("title"))
		Expect(m).To(HaveKey("configuration"))
		Expect(m).To(HaveKey("traces"))
		traces := m["traces"].([]interface{})
		Expect(traces).To(HaveLen(1))
		trace := traces[0].(map[string]interface{})
		Expect(trace).To(HaveKey("common_fields"))
		commonFields := trace["common_fields"].(map[string]interface{})
		Expect(commonFields).To(HaveKey("reference_time"))
		referenceTime := time.Unix(0, int64(commonFields["reference_time"].(float64)*1e6))
		Expect(referenceTime).To(BeTemporally("~", time.Now(), scaleDuration(10*time.Millisecond)))
		Expect(trace).To(HaveKey("event_fields"))
		for i, ef := range trace["event_fields"].([]interface{}) {
			Expect(ef.(string)).To(Equal(eventFields[i]))
		}
		Expect(trace).To(HaveKey("vantage_point"))
		vantagePoint := trace["vantage_point"].(map[string]interface{})
		Expect(vantagePoint).To(HaveKeyWithValue("type", "server"))
	})

	It("stops writing when encountering an error", func() {
		tracer = NewTracer(&limitedWriter{WriteCloser: nopWriteCloser(buf), N: 250})
		for i := 0; i < 1000; i++ {
			tracer.TicketRejected(logging.RejectionReasonAuthentication)
		}

		logBuf := &bytes.Buffer{}
		log.SetOutput(logBuf)
		defer log.SetOutput(os.Stdout)
		tracer.Close()
		Expect(logBuf.String()).To(ContainSubstring("writer full"))
	})

	Context("Events", func() {
		exportAndParse := func() []entry {
			tracer.Close()

			m := make(map[string]interface{})
			Expect(json.Unmarshal(buf.Bytes(), &m)).To(Succeed())
			Expect(m).To(HaveKey("traces"))
			var entries []entry
			traces := m["traces"].([]interface{})
			Expect(traces).To(HaveLen(1))
			trace := traces[0].(map[string]interface{})
			Expect(trace).To(HaveKey("common_fields"))
			commonFields := trace["common_fields"].(map[string]interface{})
			Expect(commonFields).To(HaveKey("reference_time"))
			referenceTime := time.Unix(0, int64(commonFields["reference_time"].(float64)*1e6))
			Expect(trace).To(HaveKey("events"))
			for _, e := range trace["events"].([]interface{}) {
				ev := e.([]interface{})
				Expect(ev).To(HaveLen(4))
				entries = append(entries, entry{
					Time:     referenceTime.Add(time.Duration(ev[0].(float64)*1e6) * time.Nanosecond),
					Category: ev[1].(string),
					Name:     ev[2].(string),
					Event:    ev[3].(map[string]interface{}),
				})
			}
			return entries
		}

		exportAndParseSingle := func() entry {
			entries := exportAndParse()
			Expect(entries).To(HaveLen(1))
			return entries[0]
		}

		It("exports a trace without events", func() {
			entries := exportAndParse()
			Expect(entries).To(BeEmpty())
		})

		It("records issued tickets", func() {
			keyName := protocol.KeyName{0xde, 0xad, 0xbe, 0xef}
			tracer.TicketIssued(keyName, time.Unix(1700000000, 0))
			entry := exportAndParseSingle()
			Expect(entry.Time).To(BeTemporally("~", time.Now(), scaleDuration(10*time.Millisecond)))
			Expect(entry.Category).To(Equal("ticket"))
			Expect(entry.Name).To(Equal("ticket_issued"))
			ev := entry.Event
			Expect(ev).To(HaveKeyWithValue("key_name", keyName.String()))
			Expect(ev).To(HaveKeyWithValue("issue_date", float64(1700000000)))
		})

		It("records redeemed tickets", func() {
			keyName := protocol.KeyName{1, 2, 3, 4}
			tracer.TicketRedeemed(keyName, 90*time.Second, true)
			entry := exportAndParseSingle()
			Expect(entry.Category).To(Equal("ticket"))
			Expect(entry.Name).To(Equal("ticket_redeemed"))
			ev := entry.Event
			Expect(ev).To(HaveKeyWithValue("key_name", keyName.String()))
			Expect(ev).To(HaveKeyWithValue("age", float64(90000)))
			Expect(ev).To(HaveKeyWithValue("used_old_key", true))
		})

		It("records rejected tickets", func() {
			tracer.TicketRejected(logging.RejectionReasonAuthentication)
			entry := exportAndParseSingle()
			Expect(entry.Category).To(Equal("ticket"))
			Expect(entry.Name).To(Equal("ticket_rejected"))
			Expect(entry.Event).To(HaveKeyWithValue("trigger", "authentication"))
		})

		It("records key rotations", func() {
			keyName := protocol.KeyName{0xca, 0xfe}
			tracer.TicketKeysRotated(keyName, 3)
			entry := exportAndParseSingle()
			Expect(entry.Category).To(Equal("key"))
			Expect(entry.Name).To(Equal("keys_rotated"))
			ev := entry.Event
			Expect(ev).To(HaveKeyWithValue("key_name", keyName.String()))
			Expect(ev).To(HaveKeyWithValue("accepted_keys", float64(3)))
		})

		It("records multiple events in order", func() {
			tracer.TicketIssued(protocol.KeyName{1}, time.Now())
			tracer.TicketRedeemed(protocol.KeyName{1}, time.Second, false)
			tracer.TicketRejected(logging.RejectionReasonLength)
			entries := exportAndParse()
			Expect(entries).To(HaveLen(3))
			Expect(entries[0].Name).To(Equal("ticket_issued"))
			Expect(entries[1].Name).To(Equal("ticket_redeemed"))
			Expect(entries[2].Name).To(Equal("ticket_rejected"))
		})
	})
})
