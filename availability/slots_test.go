package availability

import (
	"reflect"
	"testing"
)

func TestBookableSlots_SubtractsBookedTime(t *testing.T) {
	windows := []Window{window(t, 1, "09:00", "12:00")}
	busy := []Busy{{Start: mustClock(t, "10:00"), End: mustClock(t, "11:00")}}

	slots := BookableSlots(windows, busy, 60)
	want := []string{"09:00", "11:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestBookableSlots_FullDayScenario(t *testing.T) {
	// Monday 09:00-17:00, 30-minute service, empty calendar:
	// 16 slots from 09:00 through 16:30.
	windows := []Window{window(t, 1, "09:00", "17:00")}

	slots := BookableSlots(windows, nil, 30)
	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d: %v", len(slots), slots)
	}
	if slots[0] != "09:00" {
		t.Fatalf("expected first slot 09:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "16:30" {
		t.Fatalf("expected last slot 16:30, got %s", slots[len(slots)-1])
	}
}

func TestBookableSlots_PartialOverlapBlocks(t *testing.T) {
	// A booking that only partially intersects a candidate span still blocks it.
	windows := []Window{window(t, 3, "09:00", "12:00")}
	busy := []Busy{{Start: mustClock(t, "09:30"), End: mustClock(t, "10:30")}}

	slots := BookableSlots(windows, busy, 60)
	want := []string{"11:00"} // 09:00 and 10:00 spans both touch [09:30, 10:30)
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestBookableSlots_AdjacentBookingDoesNotBlock(t *testing.T) {
	windows := []Window{window(t, 1, "09:00", "11:00")}
	busy := []Busy{{Start: mustClock(t, "10:00"), End: mustClock(t, "11:00")}}

	slots := BookableSlots(windows, busy, 60)
	want := []string{"09:00"} // [09:00, 10:00) touches but does not overlap
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestBookableSlots_MultipleWindowsOrdered(t *testing.T) {
	windows := []Window{
		window(t, 1, "14:00", "16:00"),
		window(t, 1, "09:00", "10:00"),
	}

	slots := BookableSlots(windows, nil, 60)
	want := []string{"09:00", "14:00", "15:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestBookableSlots_SlotMustFitWindow(t *testing.T) {
	// 90-minute service in a 2h window: only one slot fits; the 10:30
	// candidate would spill past the window end.
	windows := []Window{window(t, 1, "09:00", "11:00")}

	slots := BookableSlots(windows, nil, 90)
	want := []string{"09:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestBookableSlots_Deterministic(t *testing.T) {
	windows := []Window{
		window(t, 1, "09:00", "12:00"),
		window(t, 1, "13:00", "17:00"),
	}
	busy := []Busy{
		{Start: mustClock(t, "10:00"), End: mustClock(t, "10:45")},
		{Start: mustClock(t, "15:00"), End: mustClock(t, "15:30")},
	}

	first := BookableSlots(windows, busy, 45)
	second := BookableSlots(windows, busy, 45)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated computation differs: %v vs %v", first, second)
	}
}

func TestBookableSlots_InvalidDuration(t *testing.T) {
	windows := []Window{window(t, 1, "09:00", "12:00")}
	if slots := BookableSlots(windows, nil, 0); slots != nil {
		t.Fatalf("expected nil for zero duration, got %v", slots)
	}
	if slots := BookableSlots(windows, nil, -30); slots != nil {
		t.Fatalf("expected nil for negative duration, got %v", slots)
	}
}
