package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNew_Normalizes(t *testing.T) {
	if got := New(2025, 13, 1); got != New(2026, time.January, 1) {
		t.Errorf("New(2025, 13, 1) = %s, want 2026-01-01", got)
	}
	if got := New(2025, time.February, 0); got != New(2025, time.January, 31) {
		t.Errorf("New(2025, 2, 0) = %s, want 2025-01-31", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		err  bool
	}{
		{in: "2025-07-01", want: New(2025, time.July, 1)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "not-a-date", err: true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("Parse(%q) error = %v, want err=%v", tt.in, err, tt.err)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestMonthBoundaries(t *testing.T) {
	d := New(2025, time.September, 17)
	if got := d.StartOfMonth(); got != New(2025, time.September, 1) {
		t.Errorf("StartOfMonth() = %s", got)
	}
	if got := d.EndOfMonth(); got != New(2025, time.September, 30) {
		t.Errorf("EndOfMonth() = %s", got)
	}
	// February of a leap year.
	if got := New(2024, time.February, 10).EndOfMonth(); got != New(2024, time.February, 29) {
		t.Errorf("EndOfMonth() leap = %s", got)
	}
}

func TestRange(t *testing.T) {
	r := Range{From: New(2025, time.September, 1), To: New(2025, time.September, 5)}
	if !r.Contains(New(2025, time.September, 1)) || !r.Contains(New(2025, time.September, 5)) {
		t.Errorf("Contains must include boundaries")
	}
	if r.Contains(New(2025, time.August, 31)) {
		t.Errorf("Contains must exclude days before From")
	}
	if got := r.Days(); got != 5 {
		t.Errorf("Days() = %d, want 5", got)
	}

	var seen []Date
	for on := range r.All() {
		seen = append(seen, on)
	}
	if len(seen) != 5 || seen[0] != r.From || seen[4] != r.To {
		t.Errorf("All() = %v", seen)
	}

	inverted := Range{From: r.To, To: r.From}
	if inverted.IsValid() {
		t.Errorf("inverted range must not be valid")
	}
	if inverted.Days() != 0 {
		t.Errorf("inverted range has no days")
	}
}

func TestRangeIdentifier(t *testing.T) {
	tests := []struct {
		r    Range
		want string
	}{
		{Range{New(2025, time.September, 3), New(2025, time.September, 3)}, "2025-09-03"},
		{Range{New(2025, time.September, 1), New(2025, time.September, 30)}, "2025-09"},
		{Range{New(2025, time.January, 1), New(2025, time.December, 31)}, "2025"},
		{Range{New(2025, time.September, 2), New(2025, time.September, 10)}, "2025-09-02_2025-09-10"},
	}
	for _, tt := range tests {
		if got := tt.r.Identifier(); got != tt.want {
			t.Errorf("Identifier(%v) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2025, time.September, 3)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON(%s) error = %v", b, err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}
