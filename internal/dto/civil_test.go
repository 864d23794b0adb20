package dto

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_JSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2026-01-31"`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.January || d.Day() != 31 {
		t.Fatalf("unexpected date %s", d)
	}

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `"2026-01-31"` {
		t.Errorf("expected \"2026-01-31\", got %s", b)
	}

	if err := json.Unmarshal([]byte(`"31/01/2026"`), &d); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestDate_MonthArithmetic(t *testing.T) {
	d := NewDate(2026, time.January, 15)

	prev := d.PreviousMonth()
	if prev.Year() != 2025 || prev.Month() != time.December || prev.Day() != 1 {
		t.Errorf("expected 2025-12-01, got %s", prev)
	}

	if last := prev.LastOfMonth(); last.String() != "2025-12-31" {
		t.Errorf("expected 2025-12-31, got %s", last)
	}

	if last := NewDate(2028, time.February, 10).LastOfMonth(); last.Day() != 29 {
		t.Errorf("expected leap day, got %s", last)
	}

	if got := d.AddDays(-15).String(); got != "2025-12-31" {
		t.Errorf("expected 2025-12-31, got %s", got)
	}
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"09:00", "09:00:00"},
		{"17:45:30", "17:45:30"},
		{"08:15:00.000000", "08:15:00"},
	}

	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.in)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("%q: expected %s, got %s", tc.in, tc.want, got)
		}
	}

	if _, err := ParseTimeOfDay("25:99"); err == nil {
		t.Error("expected error for invalid time")
	}
}

func TestMoney_AcceptsStringAndNumber(t *testing.T) {
	var body struct {
		A Money `json:"a"`
		B Money `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a": "25.50", "b": 40}`), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.A != 2550 {
		t.Errorf("expected 2550 cents, got %d", body.A)
	}
	if body.B != 4000 {
		t.Errorf("expected 4000 cents, got %d", body.B)
	}
	if body.A.String() != "25.50" {
		t.Errorf("expected 25.50, got %s", body.A)
	}
}

func TestAppointment_ToInput(t *testing.T) {
	a := Appointment{
		ID:               7,
		Customer:         Customer{ID: 3, FirstName: "Ana"},
		AppointmentDate:  NewDate(2026, time.May, 1),
		AppointmentTime:  NewTimeOfDay(10, 30, 0),
		Status:           StatusScheduled,
		TotalPrice:       4500,
		EmployeeAssigned: "Lily",
		ServicesDetails:  []Service{{ID: 1}, {ID: 4}},
	}

	in := a.ToInput()
	if in.CustomerID != 3 {
		t.Errorf("expected customer_id 3, got %d", in.CustomerID)
	}
	if len(in.Services) != 2 || in.Services[0] != 1 || in.Services[1] != 4 {
		t.Errorf("unexpected service ids %v", in.Services)
	}
	if in.Status != StatusScheduled || in.TotalPrice != 4500 || in.EmployeeAssigned != "Lily" {
		t.Errorf("unexpected payload %+v", in)
	}
}

func TestStatus_Label(t *testing.T) {
	if got := StatusCompleted.Label(); got != "Completed" {
		t.Errorf("expected Completed, got %s", got)
	}
	if Status("pending").Valid() {
		t.Error("expected pending to be invalid")
	}
}
