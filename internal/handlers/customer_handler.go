package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/lily-salon/internal/audit"
	"github.com/BruksfildServices01/lily-salon/internal/dto"
	"github.com/BruksfildServices01/lily-salon/internal/httperr"
	"github.com/BruksfildServices01/lily-salon/internal/httpresp"
	"github.com/BruksfildServices01/lily-salon/internal/models"
	"github.com/BruksfildServices01/lily-salon/internal/validators"
)

type CustomerHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewCustomerHandler(db *gorm.DB, d *audit.Dispatcher, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{db: db, audit: d, log: log}
}

// ======================================================
// VALIDATION
// ======================================================

func normalizeCustomer(in dto.CustomerInput) (dto.CustomerInput, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.Email = validators.NormalizeEmail(in.Email)

	switch {
	case in.FirstName == "":
		return in, httperr.ErrBusiness("first_name_required")
	case in.LastName == "":
		return in, httperr.ErrBusiness("last_name_required")
	case !validators.IsPhoneNumber(in.PhoneNumber):
		return in, httperr.ErrBusiness("invalid_phone_number")
	case !validators.IsEmail(in.Email):
		return in, httperr.ErrBusiness("invalid_email")
	}
	return in, nil
}

// ======================================================
// LIST
// ======================================================

// List takes an optional ?query= matched against name, phone and email.
func (h *CustomerHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context())
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR phone_number LIKE ? OR LOWER(email) LIKE ?",
			like, like, like, like,
		)
	}

	var customers []models.Customer
	if err := q.Order("id ASC").Find(&customers).Error; err != nil {
		h.log.Error("list customers failed", zap.Error(err))
		httperr.Internal(c, "failed_to_list_customers", "Failed to list customers.")
		return
	}

	out := make([]dto.Customer, 0, len(customers))
	for _, cu := range customers {
		out = append(out, cu.DTO())
	}
	httpresp.List(c, out)
}

// ======================================================
// CREATE
// ======================================================

func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}

	in, err := normalizeCustomer(req)
	if err != nil {
		httperr.Business(c, err, "invalid_request")
		return
	}

	customer := models.Customer{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&customer).Error; err != nil {
		h.writeError(c, err, "failed_to_create_customer")
		return
	}

	dispatchAudit(c, h.audit, "customer_created", "customer", customer.ID, nil)
	httpresp.Created(c, customer.DTO())
}

// ======================================================
// UPDATE
// ======================================================

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "customer_not_found")
	if !ok {
		return
	}

	var customer models.Customer
	if err := h.db.WithContext(c.Request.Context()).First(&customer, id).Error; err != nil {
		h.writeError(c, err, "failed_to_get_customer")
		return
	}

	var req dto.CustomerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}

	in, err := normalizeCustomer(req)
	if err != nil {
		httperr.Business(c, err, "invalid_request")
		return
	}

	customer.FirstName = in.FirstName
	customer.LastName = in.LastName
	customer.PhoneNumber = in.PhoneNumber
	customer.Email = in.Email

	if err := h.db.WithContext(c.Request.Context()).Save(&customer).Error; err != nil {
		h.writeError(c, err, "failed_to_update_customer")
		return
	}

	dispatchAudit(c, h.audit, "customer_updated", "customer", customer.ID, nil)
	httpresp.OK(c, customer.DTO())
}

// ======================================================
// DELETE
// ======================================================

// Delete removes the customer with its appointments and their service links.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "customer_not_found")
	if !ok {
		return
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Customer{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		owned := tx.Model(&models.Appointment{}).Select("id").Where("customer_id = ?", id)
		if err := tx.Where("appointment_id IN (?)", owned).Delete(&models.AppointmentService{}).Error; err != nil {
			return err
		}
		return tx.Where("customer_id = ?", id).Delete(&models.Appointment{}).Error
	})
	if err != nil {
		h.writeError(c, err, "failed_to_delete_customer")
		return
	}

	dispatchAudit(c, h.audit, "customer_deleted", "customer", id, nil)
	httpresp.NoContent(c)
}

func (h *CustomerHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		httperr.NotFound(c, "customer_not_found", "Customer not found.")
	case httperr.IsUniqueViolation(err):
		httperr.BadRequest(c, "email_already_exists", "A customer with this email already exists.")
	default:
		h.log.Error("customer write failed", zap.String("code", fallback), zap.Error(err))
		httperr.Internal(c, fallback, "Internal error.")
	}
}
