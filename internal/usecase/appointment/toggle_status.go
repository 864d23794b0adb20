package appointment

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/lily-salon/internal/domain/appointment"
	"github.com/BruksfildServices01/lily-salon/internal/dto"
)

// AppointmentAPI is the part of the REST client the console toggles through.
type AppointmentAPI interface {
	UpdateAppointment(ctx context.Context, id uint, in dto.AppointmentInput) (*dto.Appointment, error)
	ListAppointments(ctx context.Context) ([]dto.Appointment, error)
}

// ToggleStatus flips completed and scheduled with a full replace of the
// appointment, then reloads the list.
type ToggleStatus struct {
	log *zap.Logger
}

func NewToggleStatus(log *zap.Logger) *ToggleStatus {
	if log == nil {
		log = zap.NewNop()
	}
	return &ToggleStatus{log: log}
}

func (uc *ToggleStatus) Execute(
	ctx context.Context,
	api AppointmentAPI,
	a dto.Appointment,
) ([]dto.Appointment, error) {

	payload := domain.TogglePayload(a)

	m := NewMutate(api.ListAppointments)
	list, err := m.Execute(ctx, func(ctx context.Context) error {
		_, err := api.UpdateAppointment(ctx, a.ID, payload)
		return err
	})
	if err != nil {
		uc.log.Warn("toggle appointment status failed",
			zap.Uint("appointment_id", a.ID),
			zap.String("to", string(payload.Status)),
			zap.Error(err),
		)
		return nil, err
	}

	uc.log.Info("appointment status toggled",
		zap.Uint("appointment_id", a.ID),
		zap.String("from", string(a.Status)),
		zap.String("to", string(payload.Status)),
	)
	return list, nil
}
