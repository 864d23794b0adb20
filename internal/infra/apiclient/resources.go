package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/BruksfildServices01/lily-salon/internal/dto"
)

const (
	resourceLogin        = "login"
	resourceCustomers    = "customers"
	resourceServices     = "services"
	resourceAppointments = "appointments"
)

// ======================================================
// LOGIN
// ======================================================

// Login never sends the session token.
func (c *Client) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	err := c.do(ctx, resourceLogin, http.MethodPost, "login/",
		dto.LoginRequest{Username: username, Password: password}, &out, false)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Status >= 400 && se.Status < 500 {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return nil, err
	}
	return &out, nil
}

// ======================================================
// CUSTOMERS
// ======================================================

func (c *Client) ListCustomers(ctx context.Context) ([]dto.Customer, error) {
	out := []dto.Customer{}
	if err := c.do(ctx, resourceCustomers, http.MethodGet, "customers/", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCustomer(ctx context.Context, in dto.CustomerInput) (*dto.Customer, error) {
	var out dto.Customer
	if err := c.do(ctx, resourceCustomers, http.MethodPost, "customers/", in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id uint, in dto.CustomerInput) (*dto.Customer, error) {
	var out dto.Customer
	if err := c.do(ctx, resourceCustomers, http.MethodPut, itemPath("customers", id), in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id uint) error {
	return c.do(ctx, resourceCustomers, http.MethodDelete, itemPath("customers", id), nil, nil, true)
}

// ======================================================
// SERVICES
// ======================================================

func (c *Client) ListServices(ctx context.Context) ([]dto.Service, error) {
	out := []dto.Service{}
	if err := c.do(ctx, resourceServices, http.MethodGet, "services/", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateService(ctx context.Context, in dto.ServiceInput) (*dto.Service, error) {
	var out dto.Service
	if err := c.do(ctx, resourceServices, http.MethodPost, "services/", in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateService(ctx context.Context, id uint, in dto.ServiceInput) (*dto.Service, error) {
	var out dto.Service
	if err := c.do(ctx, resourceServices, http.MethodPut, itemPath("services", id), in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, id uint) error {
	return c.do(ctx, resourceServices, http.MethodDelete, itemPath("services", id), nil, nil, true)
}

// ======================================================
// APPOINTMENTS
// ======================================================

func (c *Client) ListAppointments(ctx context.Context) ([]dto.Appointment, error) {
	out := []dto.Appointment{}
	if err := c.do(ctx, resourceAppointments, http.MethodGet, "appointments/", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCustomerAppointments is the history of one customer.
func (c *Client) ListCustomerAppointments(ctx context.Context, customerID uint) ([]dto.Appointment, error) {
	out := []dto.Appointment{}
	path := fmt.Sprintf("appointments/customer/%d/", customerID)
	if err := c.do(ctx, resourceAppointments, http.MethodGet, path, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAppointment(ctx context.Context, in dto.AppointmentInput) (*dto.Appointment, error) {
	var out dto.Appointment
	if err := c.do(ctx, resourceAppointments, http.MethodPost, "appointments/", in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAppointment is a full replace.
func (c *Client) UpdateAppointment(ctx context.Context, id uint, in dto.AppointmentInput) (*dto.Appointment, error) {
	var out dto.Appointment
	if err := c.do(ctx, resourceAppointments, http.MethodPut, itemPath("appointments", id), in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAppointment(ctx context.Context, id uint) error {
	return c.do(ctx, resourceAppointments, http.MethodDelete, itemPath("appointments", id), nil, nil, true)
}

// FindAppointment fetches the list and picks id out of it; the API has no
// single-item read used by the console.
func (c *Client) FindAppointment(ctx context.Context, id uint) (*dto.Appointment, error) {
	list, err := c.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, &StatusError{
		Method: http.MethodGet,
		Path:   itemPath("appointments", id),
		Status: http.StatusNotFound,
	}
}

func itemPath(resource string, id uint) string {
	return fmt.Sprintf("%s/%d/", resource, id)
}
