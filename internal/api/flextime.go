package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// flexibleLayouts are tried in order. Layouts without a zone parse as UTC.
var flexibleLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FlexibleTime is a JSON timestamp that also accepts zone-less datetimes and
// plain dates, so clients can send "1990-05-01" for a birth date.
type FlexibleTime time.Time

// NewFlexibleTime wraps t.
func NewFlexibleTime(t time.Time) *FlexibleTime {
	ft := FlexibleTime(t)
	return &ft
}

// Time returns the wrapped time.
func (t FlexibleTime) Time() time.Time {
	return time.Time(t)
}

func (t FlexibleTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t))
}

func (t *FlexibleTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	for _, layout := range flexibleLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			*t = FlexibleTime(parsed)
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as a date or RFC 3339 timestamp", raw)
}
