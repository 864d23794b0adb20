package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/lily-salon/internal/dto"
	"github.com/BruksfildServices01/lily-salon/internal/httperr"
	"github.com/BruksfildServices01/lily-salon/internal/httpresp"
	"github.com/BruksfildServices01/lily-salon/internal/models"
)

const (
	auditDefaultLimit = 50
	auditMaxLimit     = 200
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// auditFilter holds the optional query parameters of audit-logs/.
type auditFilter struct {
	Action   string
	Entity   string
	EntityID uint
	UserID   uint
	From     dto.Date
	To       dto.Date
}

func parseAuditFilter(c *gin.Context) auditFilter {
	f := auditFilter{
		Action:   c.Query("action"),
		Entity:   c.Query("entity"),
		EntityID: queryUint(c, "entity_id"),
		UserID:   queryUint(c, "user_id"),
	}
	if d, err := dto.ParseDate(c.Query("from")); err == nil {
		f.From = d
	}
	if d, err := dto.ParseDate(c.Query("to")); err == nil {
		f.To = d
	}
	return f
}

func (f auditFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.EntityID != 0 {
		q = q.Where("entity_id = ?", f.EntityID)
	}
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From.Time())
	}
	if !f.To.IsZero() {
		q = q.Where("created_at < ?", f.To.AddDays(1).Time())
	}
	return q
}

func queryUint(c *gin.Context, key string) uint {
	n, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}

// List pages through recorded mutations, newest first. Date bounds are
// inclusive and compared in UTC.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(auditDefaultLimit)))
	if limit <= 0 || limit > auditMaxLimit {
		limit = auditDefaultLimit
	}

	q := parseAuditFilter(c).apply(
		h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{}),
	)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Failed to count audit logs.")
		return
	}

	var rows []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&rows).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Failed to list audit logs.")
		return
	}

	entries := make([]dto.AuditEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.DTO())
	}
	httpresp.Page(c, page, limit, total, entries)
}
