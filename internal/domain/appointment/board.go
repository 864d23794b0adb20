package appointment

import "github.com/BruksfildServices01/lily-salon/internal/dto"

// WeekAheadDays is how far past today the home page looks.
const WeekAheadDays = 5

// HomeBoard is the home page view. Today uses exact date equality, unlike
// Partition which applies UpcomingGraceDays.
type HomeBoard struct {
	Today    []dto.Appointment
	ThisWeek []dto.Appointment
}

func Board(list []dto.Appointment, today dto.Date) HomeBoard {
	weekEnd := today.AddDays(WeekAheadDays)

	b := HomeBoard{
		Today:    make([]dto.Appointment, 0),
		ThisWeek: make([]dto.Appointment, 0),
	}
	for _, a := range list {
		d := a.AppointmentDate
		switch {
		case d.Equal(today):
			b.Today = append(b.Today, a)
		case d.After(today) && !d.After(weekEnd):
			b.ThisWeek = append(b.ThisWeek, a)
		}
	}

	SortAscending(b.Today)
	SortAscending(b.ThisWeek)
	return b
}
