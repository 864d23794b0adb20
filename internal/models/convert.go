package models

import (
	"encoding/json"
	"math"
	"time"

	"github.com/BruksfildServices01/lily-salon/internal/dto"
)

// Conversions to the wire shapes served by the API.

func (c Customer) DTO() dto.Customer {
	created := c.CreatedAt
	return dto.Customer{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
		CreatedAt:   &created,
	}
}

func (s Service) DTO() dto.Service {
	return dto.Service{
		ID:          s.ID,
		ServiceName: s.ServiceName,
		Description: s.Description,
		Price:       MoneyFromFloat(s.Price),
		Duration:    s.Duration,
	}
}

func (a Appointment) DTO() dto.Appointment {
	t, _ := dto.ParseTimeOfDay(a.AppointmentTime)

	services := make([]dto.Service, 0, len(a.AppointmentServices))
	for _, link := range a.AppointmentServices {
		services = append(services, link.Service.DTO())
	}

	return dto.Appointment{
		ID:               a.ID,
		Customer:         a.Customer.DTO(),
		AppointmentDate:  dto.DateOf(a.AppointmentDate),
		AppointmentTime:  t,
		Status:           dto.Status(a.Status),
		TotalPrice:       MoneyFromFloat(a.TotalPrice),
		EmployeeAssigned: a.EmployeeAssigned,
		ServicesDetails:  services,
	}
}

func (u User) DTO() dto.User {
	return dto.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      dto.Role(u.Role),
	}
}

func MoneyFromFloat(f float64) dto.Money {
	return dto.Money(math.Round(f * 100))
}

// DateColumn stores a calendar date as midnight UTC.
func DateColumn(d dto.Date) time.Time {
	return d.Time()
}

func (l AuditLog) DTO() dto.AuditEntry {
	e := dto.AuditEntry{
		ID:        l.ID,
		UserID:    l.UserID,
		Action:    l.Action,
		Entity:    l.Entity,
		EntityID:  l.EntityID,
		CreatedAt: l.CreatedAt,
	}
	if json.Valid([]byte(l.Metadata)) {
		e.Metadata = json.RawMessage(l.Metadata)
	}
	return e
}
