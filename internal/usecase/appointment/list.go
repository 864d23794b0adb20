package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/lily-salon/internal/domain/appointment"
	"github.com/BruksfildServices01/lily-salon/internal/dto"
	"github.com/BruksfildServices01/lily-salon/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns every appointment in the read shape. A non-zero
// customerID restricts the list to that customer's history.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	customerID uint,
) ([]dto.Appointment, error) {

	var (
		rows []models.Appointment
		err  error
	)
	if customerID == 0 {
		rows, err = uc.repo.ListAppointments(ctx)
	} else {
		rows, err = uc.repo.ListAppointmentsForCustomer(ctx, customerID)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.Appointment, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.DTO())
	}
	return out, nil
}
