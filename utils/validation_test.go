package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+5511987654321",
		"11987654321",
		"(11) 98765-4321",
		"+1 415 555 0100",
	}
	for _, p := range valid {
		if !ValidatePhone(p) {
			t.Fatalf("expected %q to be valid", p)
		}
	}

	invalid := []string{
		"",
		"abc",
		"0123456",   // leading zero
		"12345",     // too short
		"+12345678901234567", // too long
	}
	for _, p := range invalid {
		if ValidatePhone(p) {
			t.Fatalf("expected %q to be invalid", p)
		}
	}
}

func TestValidateDate(t *testing.T) {
	if !ValidateDate("2026-03-02") {
		t.Fatal("expected 2026-03-02 to be valid")
	}
	for _, d := range []string{"2026/03/02", "02-03-2026", "2026-3-2", ""} {
		if ValidateDate(d) {
			t.Fatalf("expected %q to be invalid", d)
		}
	}
}
