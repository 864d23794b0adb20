package report

import (
	"fmt"
	"slices"

	"github.com/BruksfildServices01/lily-salon/internal/dto"
)

// ServiceRow counts how often one service was booked.
type ServiceRow struct {
	Service       dto.Service
	AllTime       int
	CurrentMonth  int
	PreviousMonth int
}

type Report struct {
	Rows []ServiceRow

	// CurrentMonth and PreviousMonth are the first days of each window.
	CurrentMonth  dto.Date
	PreviousMonth dto.Date

	CurrentMonthTotal  int
	PreviousMonthTotal int
}

// window is a month clipped to an inclusive upper bound.
type window struct {
	month dto.Date
	until dto.Date
}

func (w window) contains(d dto.Date) bool {
	return d.SameMonth(w.month) && !d.After(w.until)
}

// Build aggregates bookings per service. The current month window ends at
// today; the previous month window is the whole month before it. Every
// service gets a row, even with no bookings, and rows are ordered by
// all-time count descending with ties kept in input order.
func Build(services []dto.Service, appointments []dto.Appointment, today dto.Date) Report {
	current := window{month: today.FirstOfMonth(), until: today}
	prevMonth := today.PreviousMonth()
	previous := window{month: prevMonth, until: prevMonth.LastOfMonth()}

	allTime := make(map[uint]int)
	inCurrent := make(map[uint]int)
	inPrevious := make(map[uint]int)

	r := Report{
		CurrentMonth:  current.month,
		PreviousMonth: previous.month,
	}

	for _, a := range appointments {
		isCurrent := current.contains(a.AppointmentDate)
		isPrevious := previous.contains(a.AppointmentDate)

		if isCurrent {
			r.CurrentMonthTotal++
		}
		if isPrevious {
			r.PreviousMonthTotal++
		}

		for _, s := range a.ServicesDetails {
			allTime[s.ID]++
			if isCurrent {
				inCurrent[s.ID]++
			}
			if isPrevious {
				inPrevious[s.ID]++
			}
		}
	}

	r.Rows = make([]ServiceRow, 0, len(services))
	for _, s := range services {
		r.Rows = append(r.Rows, ServiceRow{
			Service:       s,
			AllTime:       allTime[s.ID],
			CurrentMonth:  inCurrent[s.ID],
			PreviousMonth: inPrevious[s.ID],
		})
	}

	slices.SortStableFunc(r.Rows, func(a, b ServiceRow) int {
		return b.AllTime - a.AllTime
	})

	return r
}

// CurrentMonthLabel renders "October".
func (r Report) CurrentMonthLabel() string {
	return r.CurrentMonth.Month().String()
}

// PreviousMonthLabel renders "September 2026".
func (r Report) PreviousMonthLabel() string {
	return MonthLabel(r.PreviousMonth)
}

func MonthLabel(d dto.Date) string {
	return fmt.Sprintf("%s %d", d.Month(), d.Year())
}
