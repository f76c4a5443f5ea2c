package availability

import "sort"

// BookableSlots computes the bookable start times for one date. Candidate
// starts step through each window by the service duration while the full
// slot still fits ([start, start+duration) within [window.Start, window.End)),
// and a candidate survives iff it overlaps none of the busy intervals.
//
// Callers pass the windows matching the date's weekday and the busy intervals
// of that date's non-canceled appointments. The returned "HH:MM" strings are
// ascending and the computation is read-only: calling it twice with the same
// inputs yields the same result.
func BookableSlots(windows []Window, busy []Busy, durationMinutes int) []string {
	if durationMinutes <= 0 {
		return nil
	}

	sorted := make([]Window, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var slots []string
	for _, w := range sorted {
		for t := w.Start; t+durationMinutes <= w.End; t += durationMinutes {
			if !overlapsAny(t, t+durationMinutes, busy) {
				slots = append(slots, FormatClock(t))
			}
		}
	}
	return slots
}

func overlapsAny(start, end int, busy []Busy) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}
