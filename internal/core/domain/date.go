package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date is a timestamp accepted in request bodies either as RFC 3339 or as a
// bare YYYY-MM-DD date, which is read as midnight UTC.
type Date struct {
	time.Time
}

// UnmarshalJSON parses an RFC 3339 timestamp or a YYYY-MM-DD date.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date: %w", err)
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("date %q: want RFC 3339 or YYYY-MM-DD", s)
}

// TimePtr returns the time held by d, or nil when d is nil.
func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// NullableTime converts a nullable date into a nullable time, keeping the
// absent and null states.
func NullableTime(n Nullable[Date]) Nullable[time.Time] {
	return Nullable[time.Time]{Set: n.Set, Valid: n.Valid, Value: n.Value.Time}
}
