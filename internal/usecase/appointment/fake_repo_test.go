package appointment

import (
	"context"

	"github.com/BruksfildServices01/lily-salon/internal/httperr"
	"github.com/BruksfildServices01/lily-salon/internal/models"
)

type fakeRepo struct {
	appointments map[uint]*models.Appointment
	customers    map[uint]models.Customer
	services     map[uint]models.Service
	links        map[uint][]uint
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: map[uint]*models.Appointment{},
		customers: map[uint]models.Customer{
			1: {ID: 1, FirstName: "Ana", LastName: "Silva"},
		},
		services: map[uint]models.Service{
			1: {ID: 1, ServiceName: "Haircut", Price: 25},
			2: {ID: 2, ServiceName: "Color", Price: 60},
		},
		links:  map[uint][]uint{},
		nextID: 1,
	}
}

func (r *fakeRepo) load(ap models.Appointment) models.Appointment {
	ap.Customer = r.customers[ap.CustomerID]
	ap.AppointmentServices = nil
	for _, sid := range r.links[ap.ID] {
		ap.AppointmentServices = append(ap.AppointmentServices, models.AppointmentService{
			AppointmentID: ap.ID,
			ServiceID:     sid,
			Service:       r.services[sid],
		})
	}
	return ap
}

func (r *fakeRepo) ListAppointments(context.Context) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for id := uint(1); id < r.nextID; id++ {
		if ap, ok := r.appointments[id]; ok {
			out = append(out, r.load(*ap))
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForCustomer(ctx context.Context, customerID uint) ([]models.Appointment, error) {
	all, _ := r.ListAppointments(ctx)
	out := []models.Appointment{}
	for _, ap := range all {
		if ap.CustomerID == customerID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	loaded := r.load(*ap)
	return &loaded, nil
}

func (r *fakeRepo) CustomerExists(_ context.Context, id uint) (bool, error) {
	_, ok := r.customers[id]
	return ok, nil
}

func (r *fakeRepo) FindServices(_ context.Context, ids []uint) ([]models.Service, error) {
	out := []models.Service{}
	for _, id := range ids {
		if s, ok := r.services[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRepo) SaveAppointment(_ context.Context, ap *models.Appointment, serviceIDs []uint) error {
	if ap.ID == 0 {
		ap.ID = r.nextID
		r.nextID++
	}
	stored := *ap
	r.appointments[ap.ID] = &stored
	r.links[ap.ID] = append([]uint(nil), serviceIDs...)
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, id uint) error {
	if _, ok := r.appointments[id]; !ok {
		return httperr.ErrBusiness("appointment_not_found")
	}
	delete(r.appointments, id)
	delete(r.links, id)
	return nil
}
