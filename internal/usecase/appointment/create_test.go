package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/lily-salon/internal/dto"
	"github.com/BruksfildServices01/lily-salon/internal/httperr"
)

func validInput() dto.AppointmentInput {
	return dto.AppointmentInput{
		CustomerID:       1,
		AppointmentDate:  dto.NewDate(2026, time.October, 20),
		AppointmentTime:  dto.NewTimeOfDay(14, 30, 0),
		TotalPrice:       8500,
		EmployeeAssigned: "Lily",
		Services:         []uint{1, 2},
	}
}

func TestCreateAppointment_DefaultsToScheduled(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), 1, validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := ap.DTO()
	if got.Status != dto.StatusScheduled {
		t.Errorf("expected scheduled, got %s", got.Status)
	}
	if got.Customer.FirstName != "Ana" {
		t.Errorf("expected embedded customer, got %+v", got.Customer)
	}
	if len(got.ServicesDetails) != 2 || got.ServicesDetails[1].ServiceName != "Color" {
		t.Errorf("unexpected services %+v", got.ServicesDetails)
	}
	if got.AppointmentTime.String() != "14:30:00" || got.TotalPrice != 8500 {
		t.Errorf("unexpected appointment %+v", got)
	}
}

func TestCreateAppointment_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.AppointmentInput)
		code   string
	}{
		{"missing date", func(in *dto.AppointmentInput) { in.AppointmentDate = dto.Date{} }, "invalid_date"},
		{"bad status", func(in *dto.AppointmentInput) { in.Status = "pending" }, "invalid_status"},
		{"negative price", func(in *dto.AppointmentInput) { in.TotalPrice = -1 }, "invalid_total_price"},
		{"blank employee", func(in *dto.AppointmentInput) { in.EmployeeAssigned = "  " }, "employee_required"},
		{"unknown customer", func(in *dto.AppointmentInput) { in.CustomerID = 99 }, "invalid_customer"},
		{"unknown service", func(in *dto.AppointmentInput) { in.Services = []uint{1, 42} }, "invalid_service"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			_, err := NewCreateAppointment(newFakeRepo(), nil).Execute(context.Background(), 1, in)
			if !httperr.IsBusiness(err, tc.code) {
				t.Errorf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

func TestReplaceAppointment_ReplacesServicesAndKeepsStatus(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()

	created, err := NewCreateAppointment(repo, nil).Execute(ctx, 1, validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := validInput()
	in.Services = []uint{2}
	in.EmployeeAssigned = "Rose"

	updated, err := NewReplaceAppointment(repo, nil).Execute(ctx, 1, created.ID, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := updated.DTO()
	if got.Status != dto.StatusScheduled {
		t.Errorf("expected omitted status to keep scheduled, got %s", got.Status)
	}
	if len(got.ServicesDetails) != 1 || got.ServicesDetails[0].ID != 2 {
		t.Errorf("expected services [2], got %+v", got.ServicesDetails)
	}
	if got.EmployeeAssigned != "Rose" {
		t.Errorf("expected Rose, got %s", got.EmployeeAssigned)
	}
}

func TestReplaceAppointment_NotFound(t *testing.T) {
	_, err := NewReplaceAppointment(newFakeRepo(), nil).Execute(context.Background(), 1, 5, validInput())
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Errorf("expected appointment_not_found, got %v", err)
	}
}

func TestDeleteAndList(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	create := NewCreateAppointment(repo, nil)

	first, _ := create.Execute(ctx, 1, validInput())
	_, _ = create.Execute(ctx, 1, validInput())

	if err := NewDeleteAppointment(repo, nil).Execute(ctx, 1, first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := NewDeleteAppointment(repo, nil).Execute(ctx, 1, first.ID); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Errorf("expected appointment_not_found on second delete, got %v", err)
	}

	list, err := NewListAppointments(repo).Execute(ctx, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].ID != 2 {
		t.Errorf("expected only appointment 2, got %+v", list)
	}

	history, _ := NewListAppointments(repo).Execute(ctx, 7)
	if len(history) != 0 {
		t.Errorf("expected empty history for unknown customer, got %d", len(history))
	}
}
