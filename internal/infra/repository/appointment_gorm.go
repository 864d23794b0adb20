package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/lily-salon/internal/domain/appointment"
	"github.com/BruksfildServices01/lily-salon/internal/httperr"
	"github.com/BruksfildServices01/lily-salon/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Customer").
		Preload("AppointmentServices", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("AppointmentServices.Service")
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.preloaded(ctx).
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.preloaded(ctx).
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.preloaded(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// References
// --------------------------------------------------

func (r *AppointmentGormRepository) CustomerExists(
	ctx context.Context,
	customerID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", customerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AppointmentGormRepository) FindServices(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	if len(ids) == 0 {
		return []models.Service{}, nil
	}

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

func (r *AppointmentGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
	serviceIDs []uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ap.AppointmentServices = nil

		if err := tx.Omit(clause.Associations).Save(ap).Error; err != nil {
			return err
		}

		if err := tx.
			Where("appointment_id = ?", ap.ID).
			Delete(&models.AppointmentService{}).Error; err != nil {
			return err
		}

		if len(serviceIDs) == 0 {
			return nil
		}

		links := make([]models.AppointmentService, 0, len(serviceIDs))
		for _, id := range serviceIDs {
			links = append(links, models.AppointmentService{
				AppointmentID: ap.ID,
				ServiceID:     id,
			})
		}
		return tx.Omit(clause.Associations).Create(&links).Error
	})
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Appointment{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("appointment_not_found")
		}
		return tx.
			Where("appointment_id = ?", id).
			Delete(&models.AppointmentService{}).Error
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
