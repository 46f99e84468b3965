package fitness

import (
	"fmt"
	"time"
)

const dateFormat = time.DateOnly

// Date is a calendar day with no time-of-day semantics. Sessions are
// compared by day, never by instant, so all date arithmetic in this
// package goes through this type to avoid off-by-one-day errors from
// timezone or partial-day offsets.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day in t's location.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
}

// ParseDate parses either a strict YYYY-MM-DD string or a full RFC 3339
// timestamp and normalizes it to local midnight.
func ParseDate(s string) (Date, error) {
	if t, err := time.ParseInLocation(dateFormat, s, time.Local); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return NewDate(t.Local()), nil
}

// MustParseDate is ParseDate for trusted literals. It panics on malformed
// input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Equal reports whether two dates denote the same instant.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateFormat) + `"`), nil
}

// UnmarshalJSON accepts both YYYY-MM-DD strings and full timestamps.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("date must be a JSON string, got %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// dateSerial converts the calendar day to a location-independent serial
// value so that day differences are exact across DST transitions.
func dateSerial(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole-day difference between two instants,
// truncated toward the earlier date. The time-of-day of both arguments is
// discarded before comparing.
func DaysBetween(from, to time.Time) int {
	return int(dateSerial(to).Sub(dateSerial(from)).Hours() / 24)
}

// StartOfWeek returns the most recent Monday at local midnight. Sunday is
// treated as day 7 of the prior week, not day 0 of a new one.
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DaysBetween(a, b) == 0
}

// IsToday reports whether t falls on the same calendar day as now.
func IsToday(t, now time.Time) bool {
	return DaysBetween(t, now) == 0
}

// IsYesterday reports whether t falls on the calendar day before now.
func IsYesterday(t, now time.Time) bool {
	return DaysBetween(t, now) == 1
}
