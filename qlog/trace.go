package qlog

import (
	"runtime/debug"
	"time"

	"github.com/francoispqt/gojay"
)

// Setting of this only works when the package is used as a library.
// When building a binary from this repository, the version can be set using the following go build flag:
// -ldflags="-X github.com/scramblesuit/scramblesuit-go/qlog.codeVersion=foobar"
var codeVersion = "(devel)"

func init() {
	if codeVersion != "(devel)" { // variable set by ldflags
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok { // no build info available. This happens when the package is not used as a library.
		return
	}
	for _, d := range info.Deps {
		if d.Path == "github.com/scramblesuit/scramblesuit-go" {
			codeVersion = d.Version
			if d.Replace != nil {
				if len(d.Replace.Version) > 0 {
					codeVersion = d.Version
				} else {
					codeVersion += " (replaced)"
				}
			}
			break
		}
	}
}

type topLevel struct {
	traces traces
}

var _ gojay.MarshalerJSONObject = topLevel{}

func (l topLevel) IsNil() bool { return false }
func (l topLevel) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("qlog_version", "draft-02-wip")
	enc.StringKey("title", "scramblesuit qlog")
	enc.ObjectKey("configuration", configuration{Version: codeVersion})
	enc.ArrayKey("traces", l.traces)
}

type configuration struct {
	Version string
}

var _ gojay.MarshalerJSONObject = configuration{}

func (c configuration) IsNil() bool { return false }
func (c configuration) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("code_version", c.Version)
}

type traces []trace

var _ gojay.MarshalerJSONArray = traces{}

func (t traces) IsNil() bool { return t == nil }
func (t traces) MarshalJSONArray(enc *gojay.Encoder) {
	for _, tr := range t {
		enc.Object(tr)
	}
}

type vantagePoint struct {
	Name string
	Type string
}

var _ gojay.MarshalerJSONObject = vantagePoint{}

func (p vantagePoint) IsNil() bool { return false }
func (p vantagePoint) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKeyOmitEmpty("name", p.Name)
	enc.StringKeyOmitEmpty("type", p.Type)
}

type commonFields struct {
	ReferenceTime time.Time
}

var _ gojay.MarshalerJSONObject = commonFields{}

func (f commonFields) IsNil() bool { return false }
func (f commonFields) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("reference_time", float64(f.ReferenceTime.UnixNano())/1e6)
}

type stringList []string

var _ gojay.MarshalerJSONArray = stringList{}

func (l stringList) IsNil() bool { return l == nil }
func (l stringList) MarshalJSONArray(enc *gojay.Encoder) {
	for _, s := range l {
		enc.String(s)
	}
}

type trace struct {
	VantagePoint vantagePoint
	CommonFields commonFields
	EventFields  []string
}

var _ gojay.MarshalerJSONObject = trace{}

func (t trace) IsNil() bool { return false }
func (t trace) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("vantage_point", t.VantagePoint)
	enc.ObjectKey("common_fields", t.CommonFields)
	enc.ArrayKey("event_fields", stringList(t.EventFields))
	// "events" must be the last entry so the trailer written on export
	// closes the document.
	enc.ArrayKey("events", events{})
}
