package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"

	MessageInvalidJSON = "Invalid JSON"

	// DateTimeFormat is the naive ISO-8601 layout used for every point in time.
	DateTimeFormat = "2006-01-02T15:04:05"
	// DateTimeMicroFormat is used when the value carries sub-second precision.
	DateTimeMicroFormat = "2006-01-02T15:04:05.000000"
)

// Envelope is the uniform result of every operation. A success carries a
// single payload under Key, or with Key empty the fields of Data inline;
// an error carries Message.
type Envelope struct {
	Status  string
	Message string
	Key     string
	Data    any
}

// OK reports whether the envelope is a success.
func (e Envelope) OK() bool {
	return e.Status == StatusSuccess
}

// MarshalJSON writes status first, then either message or the payload key.
func (e Envelope) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"status":`)
	status, err := json.Marshal(e.Status)
	if err != nil {
		return nil, err
	}
	buf.Write(status)

	if e.Status != StatusSuccess {
		msg, err := json.Marshal(e.Message)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`,"message":`)
		buf.Write(msg)
	} else if e.Key != "" {
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(e.Data)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(data)
	} else if e.Data != nil {
		data, err := json.Marshal(e.Data)
		if err != nil {
			return nil, err
		}
		data = bytes.TrimSpace(data)
		if len(data) < 2 || data[0] != '{' {
			return nil, fmt.Errorf("envelope data must encode as an object, got %s", data)
		}
		if fields := data[1 : len(data)-1]; len(fields) > 0 {
			buf.WriteByte(',')
			buf.Write(fields)
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DateTime is a naive point in time that marshals as ISO-8601 without zone.
type DateTime time.Time

// FormatDateTime renders t the way DateTime marshals it.
func FormatDateTime(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		return t.Format(DateTimeMicroFormat)
	}
	return t.Format(DateTimeFormat)
}

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(FormatDateTime(time.Time(d)))
}

// NewDateTime returns nil for nil input so absent values marshal as null.
func NewDateTime(t *time.Time) *DateTime {
	if t == nil {
		return nil
	}
	d := DateTime(*t)
	return &d
}
