package tracker

import (
	"fmt"
	"time"
)

// TimestampFormat is the format used to represent expense timestamps as
// strings, with second precision.
const TimestampFormat = "2006-01-02 15:04:05"

// Timestamp represents a point in time with second-level granularity.
type Timestamp struct {
	t time.Time
}

// NewTimestamp returns a Timestamp for the given calendar values.
func NewTimestamp(year int, month time.Month, day, hour, min, sec int) Timestamp {
	return Timestamp{t: time.Date(year, month, day, hour, min, sec, 0, time.Local)}
}

// Now returns the current time truncated to the second.
func Now() Timestamp { return Timestamp{t: time.Now().Truncate(time.Second)} }

// ParseTimestamp parses a string in TimestampFormat.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(TimestampFormat, s, time.Local)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return Timestamp{t: t}, nil
}

// String formats the timestamp in TimestampFormat.
func (ts Timestamp) String() string { return ts.t.Format(TimestampFormat) }

// Format returns a textual representation of the timestamp formatted
// according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (ts Timestamp) Format(layout string) string { return ts.t.Format(layout) }

// IsZero returns true if the timestamp is the zero value.
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

// Before reports whether ts is before x.
func (ts Timestamp) Before(x Timestamp) bool { return ts.t.Before(x.t) }

// After reports whether ts is after x.
func (ts Timestamp) After(x Timestamp) bool { return ts.t.After(x.t) }
