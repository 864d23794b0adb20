package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `gorm:"index;not null" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer"`

	AppointmentDate time.Time `gorm:"type:date;not null" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:8;not null" json:"appointment_time"`

	Status           string  `gorm:"size:10;default:'scheduled'" json:"status"`
	TotalPrice       float64 `gorm:"type:decimal(8,2);not null" json:"total_price"`
	EmployeeAssigned string  `gorm:"size:100;not null" json:"employee_assigned"`

	AppointmentServices []AppointmentService `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

// AppointmentService links an appointment to one booked service.
type AppointmentService struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	AppointmentID uint    `gorm:"index;not null" json:"appointment"`
	ServiceID     uint    `gorm:"index;not null" json:"service"`
	Service       Service `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}
