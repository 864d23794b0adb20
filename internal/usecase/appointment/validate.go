package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/lily-salon/internal/domain/appointment"
	"github.com/BruksfildServices01/lily-salon/internal/dto"
	"github.com/BruksfildServices01/lily-salon/internal/httperr"
	"github.com/BruksfildServices01/lily-salon/internal/models"
)

// checkInput validates the fields shared by create and replace, then
// looks up the referenced customer and services.
func checkInput(
	ctx context.Context,
	repo domain.Repository,
	in dto.AppointmentInput,
) error {

	if in.AppointmentDate.IsZero() {
		return httperr.ErrBusiness("invalid_date")
	}
	if in.TotalPrice < 0 {
		return httperr.ErrBusiness("invalid_total_price")
	}
	if strings.TrimSpace(in.EmployeeAssigned) == "" {
		return httperr.ErrBusiness("employee_required")
	}
	if err := domain.ValidateStatus(in.Status); err != nil {
		return err
	}

	ok, err := repo.CustomerExists(ctx, in.CustomerID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrBusiness("invalid_customer")
	}

	unique := uniqueIDs(in.Services)
	found, err := repo.FindServices(ctx, unique)
	if err != nil {
		return err
	}
	if len(found) != len(unique) {
		return httperr.ErrBusiness("invalid_service")
	}

	return nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// apply copies the scalar fields of in onto ap.
func apply(ap *models.Appointment, in dto.AppointmentInput) {
	ap.CustomerID = in.CustomerID
	ap.AppointmentDate = models.DateColumn(in.AppointmentDate)
	ap.AppointmentTime = in.AppointmentTime.String()
	ap.Status = string(in.Status)
	ap.TotalPrice = in.TotalPrice.Float64()
	ap.EmployeeAssigned = strings.TrimSpace(in.EmployeeAssigned)
}
