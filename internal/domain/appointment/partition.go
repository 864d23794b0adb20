package appointment

import (
	"slices"

	"github.com/BruksfildServices01/lily-salon/internal/dto"
)

// UpcomingGraceDays shifts the upcoming/past boundary back so that
// yesterday's appointments still list as upcoming.
const UpcomingGraceDays = 1

type Partitioned struct {
	Filtered []dto.Appointment
	Upcoming []dto.Appointment
	Past     []dto.Appointment
}

// Cutoff is the first date that counts as upcoming.
func Cutoff(today dto.Date) dto.Date {
	return today.AddDays(-UpcomingGraceDays)
}

// Partition splits list at Cutoff(today). Upcoming is ascending and past is
// descending by (date, time); equal keys keep their input order.
func Partition(list []dto.Appointment, today dto.Date) Partitioned {
	cutoff := Cutoff(today)

	p := Partitioned{
		Filtered: list,
		Upcoming: make([]dto.Appointment, 0, len(list)),
		Past:     make([]dto.Appointment, 0),
	}
	for _, a := range list {
		if a.AppointmentDate.Before(cutoff) {
			p.Past = append(p.Past, a)
		} else {
			p.Upcoming = append(p.Upcoming, a)
		}
	}

	SortAscending(p.Upcoming)
	SortDescending(p.Past)
	return p
}

// Pipeline filters list by c and partitions the result around today.
func Pipeline(list []dto.Appointment, c Criteria, today dto.Date) Partitioned {
	return Partition(Filter(list, c), today)
}

// CompareSchedule orders by appointment date, then time of day.
func CompareSchedule(a, b dto.Appointment) int {
	if c := a.AppointmentDate.Compare(b.AppointmentDate); c != 0 {
		return c
	}
	switch {
	case a.AppointmentTime < b.AppointmentTime:
		return -1
	case a.AppointmentTime > b.AppointmentTime:
		return 1
	}
	return 0
}

func SortAscending(list []dto.Appointment) {
	slices.SortStableFunc(list, CompareSchedule)
}

func SortDescending(list []dto.Appointment) {
	slices.SortStableFunc(list, func(a, b dto.Appointment) int {
		return CompareSchedule(b, a)
	})
}
