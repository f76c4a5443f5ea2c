package redis

import (
	"path"
	"testing"
)

func TestSlotCacheKey(t *testing.T) {
	got := SlotCacheKey(7, 3, "2026-03-02")
	if got != "slots:7:3:2026-03-02" {
		t.Fatalf("unexpected key %q", got)
	}
}

// The date-level pattern must match the key of every service on that
// (petshop, date) and nothing else: a booking blocks slots for all services,
// so invalidation covers them all.
func TestSlotCachePatternMatchesAllServices(t *testing.T) {
	pattern := SlotCachePattern(7, "2026-03-02")

	for _, serviceID := range []uint{1, 3, 42, 1000} {
		key := SlotCacheKey(7, serviceID, "2026-03-02")
		ok, err := path.Match(pattern, key)
		if err != nil {
			t.Fatalf("bad pattern %q: %v", pattern, err)
		}
		if !ok {
			t.Errorf("pattern %q does not match %q", pattern, key)
		}
	}

	for _, key := range []string{
		SlotCacheKey(8, 3, "2026-03-02"),  // other petshop
		SlotCacheKey(7, 3, "2026-03-03"),  // other date
	} {
		if ok, _ := path.Match(pattern, key); ok {
			t.Errorf("pattern %q unexpectedly matches %q", pattern, key)
		}
	}
}
