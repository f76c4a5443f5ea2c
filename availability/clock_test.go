package availability

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"09:30:00", 570, true}, // database time columns carry seconds
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"9:30", 0, false}, // zero padding is required
		{"0930", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		got, err := ParseClock(c.in)
		if c.ok && err != nil {
			t.Fatalf("ParseClock(%q) unexpected error: %v", c.in, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("ParseClock(%q) expected error, got %d", c.in, got)
		}
		if c.ok && got != c.want {
			t.Fatalf("ParseClock(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(0); got != "00:00" {
		t.Fatalf("expected 00:00, got %s", got)
	}
	if got := FormatClock(570); got != "09:30" {
		t.Fatalf("expected 09:30, got %s", got)
	}
	if got := FormatClock(1439); got != "23:59" {
		t.Fatalf("expected 23:59, got %s", got)
	}
}

func TestClockRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m += 7 {
		parsed, err := ParseClock(FormatClock(m))
		if err != nil {
			t.Fatalf("round trip failed at %d: %v", m, err)
		}
		if parsed != m {
			t.Fatalf("round trip at %d gave %d", m, parsed)
		}
	}
}
