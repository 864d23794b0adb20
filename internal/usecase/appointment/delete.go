package appointment

import (
	"context"

	"github.com/BruksfildServices01/lily-salon/internal/audit"
	domain "github.com/BruksfildServices01/lily-salon/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) error {

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
