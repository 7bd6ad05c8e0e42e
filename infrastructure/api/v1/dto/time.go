package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// EpochTime handles JSON serialization of time.Time as epoch milliseconds.
// Decoding also accepts RFC 3339 strings.
type EpochTime time.Time

// NewEpochTime returns t as an EpochTime, or nil for the zero time.
func NewEpochTime(t time.Time) *EpochTime {
	if t.IsZero() {
		return nil
	}
	et := EpochTime(t.UTC().Truncate(time.Millisecond))
	return &et
}

// MarshalJSON serializes the EpochTime as milliseconds since the Unix epoch.
func (et EpochTime) MarshalJSON() ([]byte, error) {
	t := time.Time(et)
	if t.IsZero() {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, t.UnixMilli(), 10), nil
}

// UnmarshalJSON deserializes epoch milliseconds or an RFC 3339 string.
func (et *EpochTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*et = EpochTime{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			*et = EpochTime(time.UnixMilli(ms).UTC())
			return nil
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("parse date %q: %w", s, err)
		}
		*et = EpochTime(t.UTC())
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("parse date: %w", err)
	}
	if ms, err := n.Int64(); err == nil {
		*et = EpochTime(time.UnixMilli(ms).UTC())
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("parse date %s: %w", n, err)
	}
	*et = EpochTime(time.UnixMilli(int64(f)).UTC())
	return nil
}

// Time returns the underlying time.Time.
func (et EpochTime) Time() time.Time {
	return time.Time(et)
}

// Equal compares at millisecond precision, the resolution of the wire format.
func (et EpochTime) Equal(other EpochTime) bool {
	return time.Time(et).UnixMilli() == time.Time(other).UnixMilli()
}

// String renders the time in RFC 3339 format.
func (et EpochTime) String() string {
	return time.Time(et).UTC().Format(time.RFC3339Nano)
}

func epochEqual(a, b *EpochTime) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func cloneEpoch(et *EpochTime) *EpochTime {
	if et == nil {
		return nil
	}
	c := *et
	return &c
}
