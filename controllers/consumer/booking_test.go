package consumer

import "testing"

func TestCancelableOn(t *testing.T) {
	today := "2026-03-02"

	cases := []struct {
		date string
		want bool
	}{
		{"2026-03-02", true},  // same day still cancelable
		{"2026-03-03", true},
		{"2026-04-01", true},
		{"2026-03-01", false}, // yesterday
		{"2025-12-31", false}, // earlier year, lexicographic order must hold
		{"2026-02-28", false},
	}

	for _, tc := range cases {
		if got := cancelableOn(tc.date, today); got != tc.want {
			t.Errorf("cancelableOn(%q, %q) = %v, want %v", tc.date, today, got, tc.want)
		}
	}
}
