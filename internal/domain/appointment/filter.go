package appointment

import (
	"strings"

	"github.com/BruksfildServices01/lily-salon/internal/dto"
)

// Criteria narrows the appointment list. Zero values mean "no filter".
type Criteria struct {
	Query  string
	Start  *dto.Date
	End    *dto.Date
	Status Status
}

func (c Criteria) IsEmpty() bool {
	return c.Query == "" && c.Start == nil && c.End == nil && c.Status == ""
}

// Filter keeps the appointments matching every criterion, in input order.
// Date bounds are inclusive; the query is a case-insensitive substring
// match on customer first name, last name and employee.
func Filter(list []dto.Appointment, c Criteria) []dto.Appointment {
	query := strings.ToLower(c.Query)

	out := make([]dto.Appointment, 0, len(list))
	for _, a := range list {
		if query != "" && !matchesQuery(a, query) {
			continue
		}
		if c.Start != nil && a.AppointmentDate.Before(*c.Start) {
			continue
		}
		if c.End != nil && a.AppointmentDate.After(*c.End) {
			continue
		}
		if c.Status != "" && a.Status != c.Status {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matchesQuery(a dto.Appointment, lowered string) bool {
	return strings.Contains(strings.ToLower(a.Customer.FirstName), lowered) ||
		strings.Contains(strings.ToLower(a.Customer.LastName), lowered) ||
		strings.Contains(strings.ToLower(a.EmployeeAssigned), lowered)
}
