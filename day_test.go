package bankbook

import (
	"testing"
	"time"
)

func TestDayOf(t *testing.T) {
	ts := time.Date(2025, time.August, 29, 23, 59, 59, 0, time.UTC)
	if got := DayOf(ts); got != NewDay(2025, time.August, 29) {
		t.Errorf("DayOf = %s", got)
	}
	// one second later is a different day
	if got := DayOf(ts.Add(time.Second)); got != NewDay(2025, time.August, 30) {
		t.Errorf("DayOf after midnight = %s", got)
	}
}

func TestDay_String(t *testing.T) {
	if got := NewDay(2025, time.January, 5).String(); got != "2025-01-05" {
		t.Errorf("String = %q", got)
	}
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2025-08-29")
	if err != nil {
		t.Fatal(err)
	}
	if d != NewDay(2025, time.August, 29) {
		t.Errorf("ParseDay = %s", d)
	}
	if _, err := ParseDay("29/08/2025"); err == nil {
		t.Error("expected an error for a non ISO day")
	}
}

func TestDay_Normalization(t *testing.T) {
	// Out-of-range components normalize the way time.Date does.
	if got := NewDay(2025, time.December, 32); got != NewDay(2026, time.January, 1) {
		t.Errorf("normalized = %s", got)
	}
}

func TestDay_Ordering(t *testing.T) {
	a, b := NewDay(2025, time.August, 29), NewDay(2025, time.August, 30)
	if !a.Before(b) || b.Before(a) || !b.After(a) {
		t.Error("ordering")
	}
	if a.IsZero() {
		t.Error("IsZero on a real day")
	}
	if !(Day{}).IsZero() {
		t.Error("IsZero on the zero value")
	}
}
