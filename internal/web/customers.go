package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/lily-salon/internal/domain/appointment"
	"github.com/BruksfildServices01/lily-salon/internal/dto"
	ucAppointment "github.com/BruksfildServices01/lily-salon/internal/usecase/appointment"
)

type customerForm struct {
	ID uint
	dto.CustomerInput
}

func parseCustomerForm(c *gin.Context) *customerForm {
	return &customerForm{CustomerInput: dto.CustomerInput{
		FirstName:   strings.TrimSpace(c.PostForm("first_name")),
		LastName:    strings.TrimSpace(c.PostForm("last_name")),
		PhoneNumber: strings.TrimSpace(c.PostForm("phone_number")),
		Email:       strings.TrimSpace(c.PostForm("email")),
	}}
}

func (f *customerForm) complete() bool {
	return f.FirstName != "" && f.LastName != "" && f.PhoneNumber != "" && f.Email != ""
}

// filterCustomers keeps customers whose name, phone or email contains q,
// ignoring case.
func filterCustomers(list []dto.Customer, q string) []dto.Customer {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return list
	}

	out := make([]dto.Customer, 0, len(list))
	for _, cu := range list {
		if strings.Contains(strings.ToLower(cu.FirstName), q) ||
			strings.Contains(strings.ToLower(cu.LastName), q) ||
			strings.Contains(strings.ToLower(cu.PhoneNumber), q) ||
			strings.Contains(strings.ToLower(cu.Email), q) {
			out = append(out, cu)
		}
	}
	return out
}

func findCustomer(list []dto.Customer, id uint) (dto.Customer, bool) {
	for _, cu := range list {
		if cu.ID == id {
			return cu, true
		}
	}
	return dto.Customer{}, false
}

// ======================================================
// PAGES
// ======================================================

func (h *Handler) Customers(c *gin.Context) {
	data := gin.H{}

	list, err := h.client(c).ListCustomers(c.Request.Context())
	if err != nil {
		h.logFailure(c, "list customers failed", err)
		data["Error"] = msgFetchCustomers
	}

	var form *customerForm
	if id := queryID(c, "edit"); id != 0 {
		if cu, ok := findCustomer(list, id); ok {
			form = &customerForm{ID: cu.ID, CustomerInput: dto.CustomerInput{
				FirstName:   cu.FirstName,
				LastName:    cu.LastName,
				PhoneNumber: cu.PhoneNumber,
				Email:       cu.Email,
			}}
		}
	} else if c.Query("new") != "" {
		form = &customerForm{}
	}

	h.renderCustomers(c, http.StatusOK, list, form, data)
}

func (h *Handler) renderCustomers(c *gin.Context, status int, list []dto.Customer, form *customerForm, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	q := c.Query("q")
	data["Query"] = q
	data["Customers"] = filterCustomers(list, q)
	if form != nil {
		data["Form"] = form
	}
	h.render(c, status, "customers", data)
}

func (h *Handler) CustomerHistory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/customers")
		return
	}

	ctx := c.Request.Context()
	cl := h.client(c)
	data := gin.H{}

	customers, err := cl.ListCustomers(ctx)
	if err != nil {
		h.logFailure(c, "list customers failed", err)
	}
	if cu, ok := findCustomer(customers, id); ok {
		data["Customer"] = cu
	}

	history, err := cl.ListCustomerAppointments(ctx, id)
	if err != nil {
		h.logFailure(c, "list customer appointments failed", err)
		data["Error"] = msgFetchHistory
	}
	appointment.SortDescending(history)
	data["History"] = history

	h.render(c, http.StatusOK, "history", data)
}

// ======================================================
// WRITES
// ======================================================

func (h *Handler) CreateCustomer(c *gin.Context) {
	form := parseCustomerForm(c)
	cl := h.client(c)

	h.writeCustomer(c, form, msgCreateCustomer, okCustomerCreated, func(ctx context.Context) error {
		_, err := cl.CreateCustomer(ctx, form.CustomerInput)
		return err
	})
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/customers")
		return
	}
	form := parseCustomerForm(c)
	form.ID = id
	cl := h.client(c)

	h.writeCustomer(c, form, msgUpdateCustomer, okCustomerUpdated, func(ctx context.Context) error {
		_, err := cl.UpdateCustomer(ctx, id, form.CustomerInput)
		return err
	})
}

func (h *Handler) writeCustomer(
	c *gin.Context,
	form *customerForm,
	failMsg, okMsg string,
	write func(ctx context.Context) error,
) {
	ctx := c.Request.Context()
	cl := h.client(c)

	if !form.complete() {
		data := gin.H{"Error": failMsg}
		list := h.reloadCustomers(c, data)
		h.renderCustomers(c, http.StatusBadRequest, list, form, data)
		return
	}

	list, err := ucAppointment.NewMutate(cl.ListCustomers).Execute(ctx, write)
	h.afterCustomerWrite(c, list, err, form, failMsg, okMsg)
}

func (h *Handler) afterCustomerWrite(
	c *gin.Context,
	list []dto.Customer,
	err error,
	form *customerForm,
	failMsg, okMsg string,
) {
	switch {
	case err == nil:
		h.renderCustomers(c, http.StatusOK, list, nil, gin.H{"Success": okMsg})
	case errors.Is(err, ucAppointment.ErrRefetch):
		h.logFailure(c, "refetch customers failed", err)
		h.renderCustomers(c, http.StatusOK, nil, nil, gin.H{
			"Success": okMsg,
			"Error":   msgFetchCustomers,
		})
	default:
		h.logFailure(c, "customer write failed", err)
		data := gin.H{"Error": failMsg}
		list := h.reloadCustomers(c, data)
		h.renderCustomers(c, http.StatusOK, list, form, data)
	}
}

func (h *Handler) ConfirmDeleteCustomer(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/customers")
		return
	}

	h.render(c, http.StatusOK, "confirm", gin.H{
		"Message":      "Are you sure you want to delete this customer?",
		"ConfirmLabel": "Delete",
		"Danger":       true,
		"Action":       fmt.Sprintf("/customers/%d/delete", id),
		"Next":         "/customers",
	})
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := paramID(c)
	if !ok || !confirmed(c) {
		c.Redirect(http.StatusSeeOther, "/customers")
		return
	}

	cl := h.client(c)
	list, err := ucAppointment.NewMutate(cl.ListCustomers).Execute(
		c.Request.Context(),
		func(ctx context.Context) error {
			return cl.DeleteCustomer(ctx, id)
		},
	)
	h.afterCustomerWrite(c, list, err, nil, msgDeleteCustomer, okCustomerDeleted)
}
