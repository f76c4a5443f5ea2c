package availability

import (
	"errors"
	"fmt"
)

// ErrWindowConflict is returned when a new window overlaps an existing one
// for the same petshop and day.
var ErrWindowConflict = errors.New("overlapping window")

// Window is a recurring weekly availability rule in engine form. Start and
// End are minutes since midnight, interpreted as the half-open interval
// [Start, End).
type Window struct {
	DayOfWeek int // 0 = Sunday .. 6 = Saturday
	Start     int
	End       int
}

// Busy is an occupied interval on a single date, minutes since midnight,
// half-open [Start, End).
type Busy struct {
	Start int
	End   int
}

// ValidateWindow checks the window invariants: a real weekday and
// 0 <= start < end <= 24h. Windows live within a single day; anything that
// would cross midnight is rejected here rather than wrapped.
func ValidateWindow(w Window) error {
	if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
		return fmt.Errorf("day_of_week %d out of range 0..6", w.DayOfWeek)
	}
	if w.Start < 0 || w.End > MinutesPerDay {
		return fmt.Errorf("window [%s, %s) out of day bounds", FormatClock(w.Start), FormatClock(w.End))
	}
	if w.Start >= w.End {
		return fmt.Errorf("window start %s must be before end %s", FormatClock(w.Start), FormatClock(w.End))
	}
	return nil
}

// Overlaps is the half-open interval overlap test: [aStart, aEnd) and
// [bStart, bEnd) intersect iff aStart < bEnd && aEnd > bStart. Touching
// boundaries do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// CheckWindowConflict rejects a new window that overlaps any existing window
// on the same day. Windows on other days are ignored; adjacent windows
// (end of one == start of the next) are allowed.
func CheckWindowConflict(w Window, existing []Window) error {
	for _, e := range existing {
		if e.DayOfWeek != w.DayOfWeek {
			continue
		}
		if Overlaps(w.Start, w.End, e.Start, e.End) {
			return fmt.Errorf("%w: [%s, %s) intersects [%s, %s)", ErrWindowConflict,
				FormatClock(w.Start), FormatClock(w.End), FormatClock(e.Start), FormatClock(e.End))
		}
	}
	return nil
}
