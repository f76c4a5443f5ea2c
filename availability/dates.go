package availability

import "time"

// BookingHorizonDays is how far ahead customers can book, counting today.
const BookingHorizonDays = 30

// BeginningOfDay truncates a time to midnight in its own location.
func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// BookableDates returns the calendar dates in [today, today+horizonDays)
// whose weekday is covered by at least one window, ascending, no duplicates.
// The result depends on wall-clock "today" on purpose: the horizon slides
// forward every day.
func BookableDates(windows []Window, today time.Time, horizonDays int) []time.Time {
	var weekdays [7]bool
	for _, w := range windows {
		if w.DayOfWeek >= 0 && w.DayOfWeek <= 6 {
			weekdays[w.DayOfWeek] = true
		}
	}

	start := BeginningOfDay(today)
	var dates []time.Time
	for i := 0; i < horizonDays; i++ {
		d := start.AddDate(0, 0, i)
		if weekdays[int(d.Weekday())] {
			dates = append(dates, d)
		}
	}
	return dates
}
