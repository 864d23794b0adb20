package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/lily-salon/internal/domain/appointment"
	"github.com/BruksfildServices01/lily-salon/internal/dto"
)

func (h *Handler) Home(c *gin.Context) {
	list, err := h.client(c).ListAppointments(c.Request.Context())
	if err != nil {
		h.logFailure(c, "list appointments failed", err)
		h.renderHome(c, nil, gin.H{"Error": msgFetchAppointments})
		return
	}

	h.renderHome(c, list, nil)
}

func (h *Handler) renderHome(c *gin.Context, list []dto.Appointment, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Board"] = appointment.Board(list, h.clock())
	h.render(c, http.StatusOK, "home", data)
}
