package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/lily-salon/internal/dto"
	"github.com/BruksfildServices01/lily-salon/internal/httperr"
	"github.com/BruksfildServices01/lily-salon/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/lily-salon/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC  *ucAppointment.CreateAppointment
	replaceUC *ucAppointment.ReplaceAppointment
	deleteUC  *ucAppointment.DeleteAppointment
	listUC    *ucAppointment.ListAppointments
	log       *zap.Logger
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	replaceUC *ucAppointment.ReplaceAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:  createUC,
		replaceUC: replaceUC,
		deleteUC:  deleteUC,
		listUC:    listUC,
		log:       log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type appointmentRequest struct {
	CustomerID       uint           `json:"customer_id" binding:"required"`
	AppointmentDate  dto.Date       `json:"appointment_date"`
	AppointmentTime  *dto.TimeOfDay `json:"appointment_time" binding:"required"`
	Status           dto.Status     `json:"status"`
	TotalPrice       *dto.Money     `json:"total_price" binding:"required"`
	EmployeeAssigned string         `json:"employee_assigned"`
	Services         []uint         `json:"services"`
}

func (r appointmentRequest) input() dto.AppointmentInput {
	return dto.AppointmentInput{
		CustomerID:       r.CustomerID,
		AppointmentDate:  r.AppointmentDate,
		AppointmentTime:  *r.AppointmentTime,
		Status:           r.Status,
		TotalPrice:       *r.TotalPrice,
		EmployeeAssigned: r.EmployeeAssigned,
		Services:         r.Services,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	list, err := h.listUC.Execute(c.Request.Context(), 0)
	if err != nil {
		h.log.Error("list appointments failed", zap.Error(err))
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}
	httpresp.List(c, list)
}

// ListForCustomer is a customer's history. An unknown customer has an
// empty history.
func (h *AppointmentHandler) ListForCustomer(c *gin.Context) {
	customerID, ok := parseID(c, "id", "customer_not_found")
	if !ok {
		return
	}

	list, err := h.listUC.Execute(c.Request.Context(), customerID)
	if err != nil {
		h.log.Error("list customer appointments failed", zap.Uint("customer_id", customerID), zap.Error(err))
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}
	httpresp.List(c, list)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), currentUserID(c), req.input())
	if err != nil {
		h.writeError(c, err, "failed_to_create_appointment")
		return
	}

	httpresp.Created(c, ap.DTO())
}

// ======================================================
// UPDATE (full replace)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "appointment_not_found")
	if !ok {
		return
	}

	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}

	ap, err := h.replaceUC.Execute(c.Request.Context(), currentUserID(c), id, req.input())
	if err != nil {
		h.writeError(c, err, "failed_to_update_appointment")
		return
	}

	httpresp.OK(c, ap.DTO())
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "appointment_not_found")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), currentUserID(c), id); err != nil {
		h.writeError(c, err, "failed_to_delete_appointment")
		return
	}

	httpresp.NoContent(c)
}

func (h *AppointmentHandler) writeError(c *gin.Context, err error, fallback string) {
	if _, ok := httperr.BusinessCode(err); !ok {
		h.log.Error("appointment write failed", zap.String("code", fallback), zap.Error(err))
	}
	httperr.Business(c, err, fallback)
}
