package availability

import (
	"testing"
	"time"
)

func TestBookableDates_TuesdayFriday(t *testing.T) {
	windows := []Window{
		{DayOfWeek: 2, Start: 540, End: 720}, // Tuesday
		{DayOfWeek: 5, Start: 540, End: 720}, // Friday
		{DayOfWeek: 2, Start: 780, End: 900}, // second Tuesday window, no duplicate date
	}

	today := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC) // a Monday, mid-afternoon
	dates := BookableDates(windows, today, BookingHorizonDays)

	// 30-day horizon starting Monday covers weeks with 4 Tuesdays + 4 Fridays
	// plus the partial tail; count them explicitly.
	want := 0
	for i := 0; i < BookingHorizonDays; i++ {
		wd := today.AddDate(0, 0, i).Weekday()
		if wd == time.Tuesday || wd == time.Friday {
			want++
		}
	}
	if len(dates) != want {
		t.Fatalf("expected %d dates, got %d", want, len(dates))
	}

	for i, d := range dates {
		if wd := d.Weekday(); wd != time.Tuesday && wd != time.Friday {
			t.Fatalf("date %s has weekday %s", d.Format("2006-01-02"), wd)
		}
		if d.Hour() != 0 || d.Minute() != 0 {
			t.Fatalf("date %s not truncated to midnight", d)
		}
		if i > 0 && !dates[i-1].Before(d) {
			t.Fatalf("dates not strictly ascending at index %d", i)
		}
	}

	if dates[0].Before(BeginningOfDay(today)) {
		t.Fatalf("first date %s before today", dates[0].Format("2006-01-02"))
	}
	last := BeginningOfDay(today).AddDate(0, 0, BookingHorizonDays-1)
	if dates[len(dates)-1].After(last) {
		t.Fatalf("last date %s beyond horizon", dates[len(dates)-1].Format("2006-01-02"))
	}
}

func TestBookableDates_IncludesTodayWhenMatching(t *testing.T) {
	today := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC) // Monday
	windows := []Window{{DayOfWeek: int(time.Monday), Start: 540, End: 1020}}

	dates := BookableDates(windows, today, BookingHorizonDays)
	if len(dates) == 0 {
		t.Fatal("expected dates, got none")
	}
	if !dates[0].Equal(BeginningOfDay(today)) {
		t.Fatalf("expected today first, got %s", dates[0].Format("2006-01-02"))
	}
}

func TestBookableDates_NoWindows(t *testing.T) {
	dates := BookableDates(nil, time.Now(), BookingHorizonDays)
	if len(dates) != 0 {
		t.Fatalf("expected no dates without windows, got %d", len(dates))
	}
}
