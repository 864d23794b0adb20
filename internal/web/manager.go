package web

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/lily-salon/internal/domain/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// buildReport fetches services and appointments and aggregates them.
func (h *Handler) buildReport(c *gin.Context) (report.Report, error) {
	ctx := c.Request.Context()
	cl := h.client(c)

	services, err := cl.ListServices(ctx)
	if err != nil {
		return report.Report{}, err
	}
	appointments, err := cl.ListAppointments(ctx)
	if err != nil {
		return report.Report{}, err
	}
	return report.Build(services, appointments, h.clock()), nil
}

func (h *Handler) Manager(c *gin.Context) {
	r, err := h.buildReport(c)
	if err != nil {
		h.logFailure(c, "build service report failed", err)
		h.render(c, http.StatusOK, "manager", gin.H{"Error": msgFetchServiceReports})
		return
	}

	h.render(c, http.StatusOK, "manager", gin.H{"Report": r})
}

func (h *Handler) ReportXLSX(c *gin.Context) {
	r, err := h.buildReport(c)
	if err != nil {
		h.logFailure(c, "build service report failed", err)
		h.render(c, http.StatusBadGateway, "manager", gin.H{"Error": msgExportReport})
		return
	}

	var buf bytes.Buffer
	if err := h.export(&buf, r); err != nil {
		h.log.Error("build xlsx report failed", zap.Error(err))
		h.render(c, http.StatusInternalServerError, "manager", gin.H{"Report": r, "Error": msgExportReport})
		return
	}

	filename := fmt.Sprintf("service-report-%d-%02d.xlsx", r.CurrentMonth.Year(), int(r.CurrentMonth.Month()))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
