package timezone

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/lily-salon/internal/dto"
)

func TestLocation_FallsBackOnInvalidZone(t *testing.T) {
	loc := Location("Not/AZone")
	if loc == nil {
		t.Fatal("expected a location")
	}
	if IsValid("Not/AZone") {
		t.Error("expected invalid zone to be rejected")
	}
	if IsValid("") {
		t.Error("expected empty zone to be rejected")
	}
}

func TestFixedClock(t *testing.T) {
	d := dto.NewDate(2026, time.March, 3)
	if got := FixedClock(d)(); !got.Equal(d) {
		t.Errorf("expected %s, got %s", d, got)
	}
}
