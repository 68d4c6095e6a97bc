package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Location is the single most recent reported coordinate. All fields are
// nil until the first update. TS encodes as epoch milliseconds so a client
// can post back what it read.
type Location struct {
	Lat      *float64   `json:"lat"`
	Lng      *float64   `json:"lng"`
	Accuracy *float64   `json:"accuracy"`
	TS       *time.Time `json:"ts"`
}

type locationJSON struct {
	Lat      *float64        `json:"lat"`
	Lng      *float64        `json:"lng"`
	Accuracy *float64        `json:"accuracy"`
	TS       json.RawMessage `json:"ts"`
}

// MarshalJSON implements json.Marshaler.
func (l Location) MarshalJSON() ([]byte, error) {
	out := struct {
		Lat      *float64 `json:"lat"`
		Lng      *float64 `json:"lng"`
		Accuracy *float64 `json:"accuracy"`
		TS       *int64   `json:"ts"`
	}{Lat: l.Lat, Lng: l.Lng, Accuracy: l.Accuracy}
	if l.TS != nil {
		ms := l.TS.UnixMilli()
		out.TS = &ms
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. ts may be epoch milliseconds or
// an RFC 3339 string.
func (l *Location) UnmarshalJSON(data []byte) error {
	var in locationJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	ts, err := decodeTimestamp(in.TS)
	if err != nil {
		return err
	}

	*l = Location{Lat: in.Lat, Lng: in.Lng, Accuracy: in.Accuracy, TS: ts}
	return nil
}

func decodeTimestamp(raw json.RawMessage) (*time.Time, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '"' {
		var t time.Time
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("decode ts: %w", err)
		}
		t = t.UTC()
		return &t, nil
	}

	var ms float64
	if err := json.Unmarshal(raw, &ms); err != nil {
		return nil, fmt.Errorf("decode ts: %w", err)
	}
	t := time.UnixMilli(int64(math.Round(ms))).UTC()
	return &t, nil
}

// HasCoordinates reports whether both lat and lng are set and finite.
func (l Location) HasCoordinates() bool {
	return IsFinite(l.Lat) && IsFinite(l.Lng)
}

// IsFinite reports whether v is non-nil and neither NaN nor ±Inf.
func IsFinite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
