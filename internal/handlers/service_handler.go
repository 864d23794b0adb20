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
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewServiceHandler(db *gorm.DB, d *audit.Dispatcher, log *zap.Logger) *ServiceHandler {
	return &ServiceHandler{db: db, audit: d, log: log}
}

// --------- Requests ---------

type serviceRequest struct {
	ServiceName string     `json:"service_name" binding:"required"`
	Description string     `json:"description"`
	Price       *dto.Money `json:"price" binding:"required"`
	Duration    *int       `json:"duration" binding:"required"`
}

func (r serviceRequest) validate() error {
	if strings.TrimSpace(r.ServiceName) == "" {
		return httperr.ErrBusiness("service_name_required")
	}
	if *r.Price < 0 {
		return httperr.ErrBusiness("invalid_price")
	}
	if *r.Duration < 0 {
		return httperr.ErrBusiness("invalid_duration")
	}
	return nil
}

func (r serviceRequest) apply(s *models.Service) {
	s.ServiceName = strings.TrimSpace(r.ServiceName)
	s.Description = r.Description
	s.Price = r.Price.Float64()
	s.Duration = *r.Duration
}

// --------- Handlers ---------

// List takes an optional ?query= matched against name and description.
func (h *ServiceHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context())
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(service_name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		h.log.Error("list services failed", zap.Error(err))
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	out := make([]dto.Service, 0, len(services))
	for _, s := range services {
		out = append(out, s.DTO())
	}
	httpresp.List(c, out)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}
	if err := req.validate(); err != nil {
		httperr.Business(c, err, "invalid_request")
		return
	}

	var service models.Service
	req.apply(&service)

	if err := h.db.WithContext(c.Request.Context()).Create(&service).Error; err != nil {
		h.writeError(c, err, "failed_to_create_service")
		return
	}

	dispatchAudit(c, h.audit, "service_created", "service", service.ID, nil)
	httpresp.Created(c, service.DTO())
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "service_not_found")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.WithContext(c.Request.Context()).First(&service, id).Error; err != nil {
		h.writeError(c, err, "failed_to_get_service")
		return
	}

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid data.")
		return
	}
	if err := req.validate(); err != nil {
		httperr.Business(c, err, "invalid_request")
		return
	}

	req.apply(&service)

	if err := h.db.WithContext(c.Request.Context()).Save(&service).Error; err != nil {
		h.writeError(c, err, "failed_to_update_service")
		return
	}

	dispatchAudit(c, h.audit, "service_updated", "service", service.ID, nil)
	httpresp.OK(c, service.DTO())
}

// Delete also drops the service from every appointment that booked it.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "service_not_found")
	if !ok {
		return
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Service{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("service_id = ?", id).Delete(&models.AppointmentService{}).Error
	})
	if err != nil {
		h.writeError(c, err, "failed_to_delete_service")
		return
	}

	dispatchAudit(c, h.audit, "service_deleted", "service", id, nil)
	httpresp.NoContent(c)
}

func (h *ServiceHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		httperr.NotFound(c, "service_not_found", "Service not found.")
	case httperr.IsUniqueViolation(err):
		httperr.BadRequest(c, "service_name_already_exists", "A service with this name already exists.")
	default:
		h.log.Error("service write failed", zap.String("code", fallback), zap.Error(err))
		httperr.Internal(c, fallback, "Internal error.")
	}
}
