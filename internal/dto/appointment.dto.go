package dto

import "strings"

// ======================================================
// STATUS
// ======================================================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// Label capitalises the status for display.
func (s Status) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// ======================================================
// READ SHAPE
// ======================================================

// Appointment is the shape returned by appointments/: customer and
// services are embedded.
type Appointment struct {
	ID               uint      `json:"id" validate:"required"`
	Customer         Customer  `json:"customer"`
	AppointmentDate  Date      `json:"appointment_date" validate:"required"`
	AppointmentTime  TimeOfDay `json:"appointment_time"`
	Status           Status    `json:"status" validate:"oneof=scheduled completed canceled"`
	TotalPrice       Money     `json:"total_price"`
	EmployeeAssigned string    `json:"employee_assigned"`
	ServicesDetails  []Service `json:"services_details" validate:"dive"`
}

func (a Appointment) ServiceIDs() []uint {
	ids := make([]uint, 0, len(a.ServicesDetails))
	for _, s := range a.ServicesDetails {
		ids = append(ids, s.ID)
	}
	return ids
}

// ToInput converts the read shape into the write shape, replacing the
// embedded customer and services with id references.
func (a Appointment) ToInput() AppointmentInput {
	return AppointmentInput{
		CustomerID:       a.Customer.ID,
		AppointmentDate:  a.AppointmentDate,
		AppointmentTime:  a.AppointmentTime,
		Status:           a.Status,
		TotalPrice:       a.TotalPrice,
		EmployeeAssigned: a.EmployeeAssigned,
		Services:         a.ServiceIDs(),
	}
}

// ======================================================
// WRITE SHAPE
// ======================================================

type AppointmentInput struct {
	CustomerID       uint      `json:"customer_id"`
	AppointmentDate  Date      `json:"appointment_date"`
	AppointmentTime  TimeOfDay `json:"appointment_time"`
	Status           Status    `json:"status"`
	TotalPrice       Money     `json:"total_price"`
	EmployeeAssigned string    `json:"employee_assigned"`
	Services         []uint    `json:"services"`
}
