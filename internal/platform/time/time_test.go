package time

import (
	"testing"
	"time"

	"workmonitor/internal/platform/testkit"
)

func TestParseEventTime(t *testing.T) {
	testkit.Serial(t)
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	testkit.Swap(t, &Now, func() time.Time { return fixed })

	got := ParseEventTime("2024-01-15T10:30:00+02:00")
	if !got.Equal(time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)) {
		t.Fatalf("parsed = %v", got)
	}
	if got := ParseEventTime(""); !got.Equal(fixed) {
		t.Fatalf("empty fallback = %v", got)
	}
	if got := ParseEventTime("yesterday"); !got.Equal(fixed) {
		t.Fatalf("invalid fallback = %v", got)
	}
}

func TestDayWindows(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 8, 17, 45, 0, 0, time.UTC)
	if got := StartOfDay(now); !got.Equal(time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("StartOfDay = %v", got)
	}
	if got := DaysAgo(now, 7); !got.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("DaysAgo = %v", got)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-10-17T08:30:00+09:00")
	if err != nil || !got.Equal(time.Date(2026, 10, 16, 23, 30, 0, 0, time.UTC)) {
		t.Fatalf("rfc3339 = %v, %v", got, err)
	}
	got, err = ParseDate("2026-10-17")
	if err != nil || !got.Equal(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date only = %v, %v", got, err)
	}
	if _, err := ParseDate("10/17/2026"); err == nil {
		t.Fatalf("expected error for US date")
	}
}
