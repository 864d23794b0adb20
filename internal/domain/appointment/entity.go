package appointment

import "github.com/BruksfildServices01/lily-salon/internal/dto"

// ===============================
// Domain Actions
// ===============================

// TogglePayload rebuilds the full write payload of a with only the status
// flipped. The API has no partial update for status.
func TogglePayload(a dto.Appointment) dto.AppointmentInput {
	in := a.ToInput()
	in.Status = ToggledStatus(a.Status)
	return in
}

// Find returns the appointment with the given id from an already fetched list.
func Find(list []dto.Appointment, id uint) (dto.Appointment, bool) {
	for _, a := range list {
		if a.ID == id {
			return a, true
		}
	}
	return dto.Appointment{}, false
}
