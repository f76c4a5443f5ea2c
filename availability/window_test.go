package availability

import (
	"errors"
	"testing"
)

func mustClock(t *testing.T, s string) int {
	t.Helper()
	m, err := ParseClock(s)
	if err != nil {
		t.Fatalf("ParseClock(%q): %v", s, err)
	}
	return m
}

func window(t *testing.T, day int, start, end string) Window {
	t.Helper()
	return Window{DayOfWeek: day, Start: mustClock(t, start), End: mustClock(t, end)}
}

func TestValidateWindow(t *testing.T) {
	if err := ValidateWindow(window(t, 1, "09:00", "12:00")); err != nil {
		t.Fatalf("valid window rejected: %v", err)
	}
	if err := ValidateWindow(Window{DayOfWeek: 7, Start: 0, End: 60}); err == nil {
		t.Fatal("day_of_week 7 accepted")
	}
	if err := ValidateWindow(window(t, 1, "12:00", "12:00")); err == nil {
		t.Fatal("empty window accepted")
	}
	if err := ValidateWindow(window(t, 1, "12:00", "09:00")); err == nil {
		t.Fatal("inverted window accepted")
	}
}

// Boundary set from an existing Monday window [09:00, 12:00).
func TestCheckWindowConflict(t *testing.T) {
	existing := []Window{window(t, 1, "09:00", "12:00")}

	rejected := []struct{ start, end string }{
		{"11:00", "13:00"}, // partial overlap at the end
		{"08:00", "10:00"}, // partial overlap at the start
		{"09:00", "12:00"}, // exact duplicate
		{"09:30", "11:30"}, // containment
		{"08:00", "13:00"}, // covers the existing window
	}
	for _, r := range rejected {
		err := CheckWindowConflict(window(t, 1, r.start, r.end), existing)
		if err == nil {
			t.Fatalf("[%s, %s) should conflict with [09:00, 12:00)", r.start, r.end)
		}
		if !errors.Is(err, ErrWindowConflict) {
			t.Fatalf("[%s, %s): expected ErrWindowConflict, got %v", r.start, r.end, err)
		}
	}

	accepted := []struct{ start, end string }{
		{"12:00", "15:00"}, // adjacent after, touching boundary
		{"06:00", "09:00"}, // adjacent before
		{"14:00", "16:00"}, // disjoint
	}
	for _, a := range accepted {
		if err := CheckWindowConflict(window(t, 1, a.start, a.end), existing); err != nil {
			t.Fatalf("[%s, %s) should not conflict: %v", a.start, a.end, err)
		}
	}

	// Same times on another day never conflict.
	if err := CheckWindowConflict(window(t, 2, "09:00", "12:00"), existing); err != nil {
		t.Fatalf("other weekday flagged as conflict: %v", err)
	}
}

// Any sequence of accepted windows stays pairwise non-overlapping.
func TestAcceptedWindowsStayDisjoint(t *testing.T) {
	candidates := []Window{
		window(t, 1, "09:00", "12:00"),
		window(t, 1, "11:00", "13:00"),
		window(t, 1, "12:00", "15:00"),
		window(t, 1, "08:00", "09:00"),
		window(t, 1, "14:00", "16:00"),
		window(t, 1, "07:30", "08:30"),
	}

	var accepted []Window
	for _, c := range candidates {
		if err := CheckWindowConflict(c, accepted); err == nil {
			accepted = append(accepted, c)
		}
	}

	for i := range accepted {
		for j := range accepted {
			if i == j {
				continue
			}
			if Overlaps(accepted[i].Start, accepted[i].End, accepted[j].Start, accepted[j].End) {
				t.Fatalf("accepted windows overlap: [%s, %s) and [%s, %s)",
					FormatClock(accepted[i].Start), FormatClock(accepted[i].End),
					FormatClock(accepted[j].Start), FormatClock(accepted[j].End))
			}
		}
	}
}
