package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/lily-salon/internal/dto"
	ucAppointment "github.com/BruksfildServices01/lily-salon/internal/usecase/appointment"
)

type serviceForm struct {
	ID          uint
	ServiceName string
	Description string
	Price       string
	Duration    string
}

func parseServiceForm(c *gin.Context) *serviceForm {
	return &serviceForm{
		ServiceName: strings.TrimSpace(c.PostForm("service_name")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Price:       strings.TrimSpace(c.PostForm("price")),
		Duration:    strings.TrimSpace(c.PostForm("duration")),
	}
}

func (f *serviceForm) Input() (dto.ServiceInput, error) {
	if f.ServiceName == "" {
		return dto.ServiceInput{}, errors.New("service name is required")
	}
	price, err := dto.ParseMoney(f.Price)
	if err != nil {
		return dto.ServiceInput{}, err
	}
	duration, err := strconv.Atoi(f.Duration)
	if err != nil {
		return dto.ServiceInput{}, fmt.Errorf("invalid duration %q", f.Duration)
	}
	return dto.ServiceInput{
		ServiceName: f.ServiceName,
		Description: f.Description,
		Price:       price,
		Duration:    duration,
	}, nil
}

func (h *Handler) Services(c *gin.Context) {
	data := gin.H{}

	list, err := h.client(c).ListServices(c.Request.Context())
	if err != nil {
		h.logFailure(c, "list services failed", err)
		data["Error"] = msgFetchServices
	}

	var form *serviceForm
	if id := queryID(c, "edit"); id != 0 {
		for _, s := range list {
			if s.ID == id {
				form = &serviceForm{
					ID:          s.ID,
					ServiceName: s.ServiceName,
					Description: s.Description,
					Price:       s.Price.String(),
					Duration:    strconv.Itoa(s.Duration),
				}
				break
			}
		}
	} else if c.Query("new") != "" {
		form = &serviceForm{}
	}

	h.renderServices(c, http.StatusOK, list, form, data)
}

func (h *Handler) renderServices(c *gin.Context, status int, list []dto.Service, form *serviceForm, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Services"] = list
	if form != nil {
		data["Form"] = form
	}
	h.render(c, status, "services", data)
}

func (h *Handler) CreateService(c *gin.Context) {
	form := parseServiceForm(c)
	cl := h.client(c)

	h.writeService(c, form, msgCreateService, okServiceCreated, func(ctx context.Context, in dto.ServiceInput) error {
		_, err := cl.CreateService(ctx, in)
		return err
	})
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/services")
		return
	}
	form := parseServiceForm(c)
	form.ID = id
	cl := h.client(c)

	h.writeService(c, form, msgUpdateService, okServiceUpdated, func(ctx context.Context, in dto.ServiceInput) error {
		_, err := cl.UpdateService(ctx, id, in)
		return err
	})
}

func (h *Handler) writeService(
	c *gin.Context,
	form *serviceForm,
	failMsg, okMsg string,
	write func(ctx context.Context, in dto.ServiceInput) error,
) {
	ctx := c.Request.Context()
	cl := h.client(c)

	in, err := form.Input()
	if err != nil {
		data := gin.H{"Error": failMsg}
		list := h.reloadServices(c, data)
		h.renderServices(c, http.StatusBadRequest, list, form, data)
		return
	}

	list, err := ucAppointment.NewMutate(cl.ListServices).Execute(ctx, func(ctx context.Context) error {
		return write(ctx, in)
	})
	h.afterServiceWrite(c, list, err, form, failMsg, okMsg)
}

func (h *Handler) afterServiceWrite(
	c *gin.Context,
	list []dto.Service,
	err error,
	form *serviceForm,
	failMsg, okMsg string,
) {
	switch {
	case err == nil:
		h.renderServices(c, http.StatusOK, list, nil, gin.H{"Success": okMsg})
	case errors.Is(err, ucAppointment.ErrRefetch):
		h.logFailure(c, "refetch services failed", err)
		h.renderServices(c, http.StatusOK, nil, nil, gin.H{
			"Success": okMsg,
			"Error":   msgFetchServices,
		})
	default:
		h.logFailure(c, "service write failed", err)
		data := gin.H{"Error": failMsg}
		list := h.reloadServices(c, data)
		h.renderServices(c, http.StatusOK, list, form, data)
	}
}

func (h *Handler) ConfirmDeleteService(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/services")
		return
	}

	h.render(c, http.StatusOK, "confirm", gin.H{
		"Message":      "Are you sure you want to delete this service?",
		"ConfirmLabel": "Delete",
		"Danger":       true,
		"Action":       fmt.Sprintf("/services/%d/delete", id),
		"Next":         "/services",
	})
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := paramID(c)
	if !ok || !confirmed(c) {
		c.Redirect(http.StatusSeeOther, "/services")
		return
	}

	cl := h.client(c)
	list, err := ucAppointment.NewMutate(cl.ListServices).Execute(
		c.Request.Context(),
		func(ctx context.Context) error {
			return cl.DeleteService(ctx, id)
		},
	)
	h.afterServiceWrite(c, list, err, nil, msgDeleteService, okServiceDeleted)
}
