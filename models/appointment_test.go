package models

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to AppointmentStatus
		ok       bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCanceled, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusPending, false},

		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCanceled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusConfirmed, StatusConfirmed, false},

		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCompleted, StatusCanceled, false},

		{StatusCanceled, StatusPending, false},
		{StatusCanceled, StatusConfirmed, false},
		{StatusCanceled, StatusCompleted, false},
	}

	for _, tc := range cases {
		err := CanTransition(tc.from, tc.to)
		if tc.ok && err != nil {
			t.Errorf("CanTransition(%s, %s) = %v, want nil", tc.from, tc.to, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("CanTransition(%s, %s) = nil, want error", tc.from, tc.to)
		}
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	if err := CanTransition(AppointmentStatus("archived"), StatusConfirmed); err == nil {
		t.Fatal("expected error for unknown status")
	}
}
