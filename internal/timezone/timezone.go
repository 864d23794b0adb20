package timezone

import (
	"time"

	"github.com/BruksfildServices01/lily-salon/internal/dto"
)

const DefaultTimezone = "America/New_York"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location falls back to DefaultTimezone, then UTC, when tz cannot be loaded.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today is the salon's current calendar date.
func Today(tz string) dto.Date {
	return dto.DateOf(NowIn(tz))
}

// Clock yields the evaluation date for views. Tests pin it.
type Clock func() dto.Date

func SalonClock(tz string) Clock {
	return func() dto.Date { return Today(tz) }
}

func FixedClock(d dto.Date) Clock {
	return func() dto.Date { return d }
}
