// Package time contains time helpers for event timestamps and reporting windows
package time

import "time"

// Now is the clock seam, tests swap it
var Now = func() time.Time { return time.Now().UTC() }

// ParseEventTime parses an RFC3339 timestamp and falls back to Now when s is empty or invalid
func ParseEventTime(s string) time.Time {
	if s == "" {
		return Now()
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Now()
	}
	return t.UTC()
}

// StartOfDay returns midnight UTC of t's day
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysAgo returns StartOfDay(now) minus n days
func DaysAgo(now time.Time, n int) time.Time {
	return StartOfDay(now).AddDate(0, 0, -n)
}

// ParseDate accepts RFC3339 timestamps and plain YYYY-MM-DD dates (UTC midnight)
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, s)
}
