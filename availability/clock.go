// Package availability implements the slot-conflict engine: weekly recurring
// availability windows, overlap rejection, bookable-date expansion and
// per-date slot computation. It is pure logic over plain values; callers load
// rows from the database and convert at this boundary.
//
// Clock times are minutes since midnight inside the package and zero-padded
// "HH:MM" strings outside it. Dates and weekdays use the standard library
// convention (time.Weekday, 0 = Sunday).
package availability

import (
	"fmt"
)

const MinutesPerDay = 24 * 60

// ParseClock parses a 24h clock value ("HH:MM", or "HH:MM:SS" as stored by
// the database) into minutes since midnight.
func ParseClock(s string) (int, error) {
	if len(s) == len("15:04:05") && s[5] == ':' {
		s = s[:5]
	}
	if len(s) != len("15:04") || s[2] != ':' {
		return 0, fmt.Errorf("invalid clock value %q, expected HH:MM", s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("invalid clock value %q, expected HH:MM", s)
		}
	}

	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM". The
// padding matters: stored times are compared lexicographically.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
