package appointment

import (
	"context"

	"github.com/BruksfildServices01/lily-salon/internal/models"
)

// Repository is the API-side persistence for appointments.
type Repository interface {
	// -------- Appointment (read) --------
	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Appointment, error)

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// -------- References --------
	CustomerExists(
		ctx context.Context,
		customerID uint,
	) (bool, error)

	FindServices(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Appointment (write) --------

	// SaveAppointment creates or fully replaces ap and its service links.
	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
		serviceIDs []uint,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error
}
