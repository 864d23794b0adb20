package appointment

import (
	"context"

	"github.com/BruksfildServices01/lily-salon/internal/audit"
	domain "github.com/BruksfildServices01/lily-salon/internal/domain/appointment"
	"github.com/BruksfildServices01/lily-salon/internal/dto"
	"github.com/BruksfildServices01/lily-salon/internal/models"
)

// ReplaceAppointment overwrites every field and the service links of an
// existing appointment.
type ReplaceAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReplaceAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ReplaceAppointment {
	return &ReplaceAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ReplaceAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
	in dto.AppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	// status has a default, so an omitted status keeps the stored one
	if in.Status == "" {
		in.Status = dto.Status(ap.Status)
	}
	previous := ap.Status

	if err := checkInput(ctx, uc.repo, in); err != nil {
		return nil, err
	}

	apply(ap, in)
	ap.Customer = models.Customer{}

	if err := uc.repo.SaveAppointment(ctx, ap, in.Services); err != nil {
		return nil, err
	}

	action := "appointment_updated"
	if previous != ap.Status {
		action = "appointment_" + ap.Status
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"from": previous, "to": ap.Status},
	})

	return uc.repo.GetAppointment(ctx, ap.ID)
}
