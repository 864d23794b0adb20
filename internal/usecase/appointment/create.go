package appointment

import (
	"context"

	"github.com/BruksfildServices01/lily-salon/internal/audit"
	domain "github.com/BruksfildServices01/lily-salon/internal/domain/appointment"
	"github.com/BruksfildServices01/lily-salon/internal/dto"
	"github.com/BruksfildServices01/lily-salon/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	userID uint,
	in dto.AppointmentInput,
) (*models.Appointment, error) {

	if in.Status == "" {
		in.Status = domain.InitialStatus()
	}

	if err := checkInput(ctx, uc.repo, in); err != nil {
		return nil, err
	}

	ap := &models.Appointment{}
	apply(ap, in)

	if err := uc.repo.SaveAppointment(ctx, ap, in.Services); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return uc.repo.GetAppointment(ctx, ap.ID)
}
