package appointment

import (
	"github.com/BruksfildServices01/lily-salon/internal/dto"
	"github.com/BruksfildServices01/lily-salon/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status = dto.Status

const (
	StatusScheduled = dto.StatusScheduled
	StatusCompleted = dto.StatusCompleted
	StatusCanceled  = dto.StatusCanceled
)

// ToggledStatus flips completed back to scheduled; every other status
// becomes completed.
func ToggledStatus(current Status) Status {
	if current == StatusCompleted {
		return StatusScheduled
	}
	return StatusCompleted
}

func ConfirmToggleMessage(current Status) string {
	if current == StatusCompleted {
		return "Are you sure you want to mark this appointment as scheduled?"
	}
	return "Are you sure you want to mark this appointment as completed?"
}

func ToggleLabel(current Status) string {
	if current == StatusCompleted {
		return "Mark as Scheduled"
	}
	return "Mark as Completed"
}

// ===============================
// Validations
// ===============================

func ValidateStatus(s Status) error {
	if !s.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
