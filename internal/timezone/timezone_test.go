package timezone

import (
	"testing"
	"time"
)

// The deployment zone defaults to America/Toronto, which observes DST:
// 2026-03-08 is a 23-hour day and 2026-11-01 a 25-hour day.

func TestLocalDayBounds_StandardDay(t *testing.T) {
	start, end := LocalDayBounds(2026, time.January, 15)

	// EST is UTC-5.
	if got := start.UTC().Hour(); got != 5 {
		t.Fatalf("expected day start at 05:00 UTC, got %02d:00", got)
	}

	elapsed := end.Sub(start)
	want := 24*time.Hour - time.Millisecond
	if elapsed != want {
		t.Fatalf("expected %s between bounds, got %s", want, elapsed)
	}
}

func TestLocalDayBounds_SpringForward(t *testing.T) {
	start, end := LocalDayBounds(2026, time.March, 8)

	elapsed := end.Sub(start)
	want := 23*time.Hour - time.Millisecond
	if elapsed != want {
		t.Fatalf("expected 23h day, got %s between bounds", elapsed)
	}
}

func TestLocalDayBounds_FallBack(t *testing.T) {
	start, end := LocalDayBounds(2026, time.November, 1)

	elapsed := end.Sub(start)
	want := 25*time.Hour - time.Millisecond
	if elapsed != want {
		t.Fatalf("expected 25h day, got %s between bounds", elapsed)
	}
}

func TestNextLocalMidnight_SpringForward(t *testing.T) {
	start, _ := LocalDayBounds(2026, time.March, 8)
	next := NextLocalMidnight(2026, time.March, 8)

	if next.Sub(start) != 23*time.Hour {
		t.Fatalf("expected next midnight 23h after start, got %s", next.Sub(start))
	}

	if next.Hour() != 0 || next.Day() != 9 {
		t.Fatalf("expected local midnight March 9, got %s", next)
	}
}

func TestParseLocalDateTime(t *testing.T) {
	got, err := ParseLocalDateTime("2026-01-15", "14:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// EST in January: 14:30 local is 19:30 UTC.
	utc := got.UTC()
	if utc.Hour() != 19 || utc.Minute() != 30 {
		t.Fatalf("expected 19:30 UTC, got %02d:%02d", utc.Hour(), utc.Minute())
	}
}

func TestParseLocalDateTime_Invalid(t *testing.T) {
	if _, err := ParseLocalDateTime("2026-01-15", "25:00"); err == nil {
		t.Fatal("expected error for hour 25")
	}
	if _, err := ParseLocalDateTime("15/01/2026", "10:00"); err == nil {
		t.Fatal("expected error for wrong date layout")
	}
}
