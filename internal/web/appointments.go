package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/lily-salon/internal/domain/appointment"
	"github.com/BruksfildServices01/lily-salon/internal/dto"
	ucAppointment "github.com/BruksfildServices01/lily-salon/internal/usecase/appointment"
)

// ======================================================
// FORMS
// ======================================================

// filterForm echoes the filter inputs back into the search bar.
type filterForm struct {
	Query  string
	Start  string
	End    string
	Status string
}

func parseFilter(c *gin.Context) (appointment.Criteria, filterForm) {
	f := filterForm{
		Query:  c.Query("q"),
		Start:  c.Query("start"),
		End:    c.Query("end"),
		Status: c.Query("status"),
	}

	crit := appointment.Criteria{Query: f.Query}
	if d, err := dto.ParseDate(f.Start); err == nil {
		crit.Start = &d
	} else {
		f.Start = ""
	}
	if d, err := dto.ParseDate(f.End); err == nil {
		crit.End = &d
	} else {
		f.End = ""
	}
	if s := appointment.Status(f.Status); s.Valid() {
		crit.Status = s
	} else {
		f.Status = ""
	}
	return crit, f
}

// appointmentForm holds the raw form values so a rejected submission can
// be shown again as typed.
type appointmentForm struct {
	ID         uint
	CustomerID string
	Date       string
	Time       string
	Status     string
	TotalPrice string
	Employee   string
	Services   []uint
}

func newAppointmentForm(today dto.Date) *appointmentForm {
	return &appointmentForm{
		Date:   today.String(),
		Status: string(appointment.InitialStatus()),
	}
}

func formFromAppointment(a dto.Appointment) *appointmentForm {
	return &appointmentForm{
		ID:         a.ID,
		CustomerID: strconv.FormatUint(uint64(a.Customer.ID), 10),
		Date:       a.AppointmentDate.String(),
		Time:       a.AppointmentTime.Short(),
		Status:     string(a.Status),
		TotalPrice: a.TotalPrice.String(),
		Employee:   a.EmployeeAssigned,
		Services:   a.ServiceIDs(),
	}
}

func parseAppointmentForm(c *gin.Context) *appointmentForm {
	f := &appointmentForm{
		CustomerID: strings.TrimSpace(c.PostForm("customer_id")),
		Date:       strings.TrimSpace(c.PostForm("appointment_date")),
		Time:       strings.TrimSpace(c.PostForm("appointment_time")),
		Status:     c.PostForm("status"),
		TotalPrice: strings.TrimSpace(c.PostForm("total_price")),
		Employee:   strings.TrimSpace(c.PostForm("employee_assigned")),
	}
	for _, raw := range c.PostFormArray("services") {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id > 0 {
			f.Services = append(f.Services, uint(id))
		}
	}
	return f
}

// Input checks the required fields and builds the write payload.
func (f *appointmentForm) Input() (dto.AppointmentInput, error) {
	var in dto.AppointmentInput

	customerID, err := strconv.ParseUint(f.CustomerID, 10, 64)
	if err != nil || customerID == 0 {
		return in, errors.New("customer is required")
	}
	date, err := dto.ParseDate(f.Date)
	if err != nil {
		return in, err
	}
	tod, err := dto.ParseTimeOfDay(f.Time)
	if err != nil {
		return in, err
	}
	price, err := dto.ParseMoney(f.TotalPrice)
	if err != nil {
		return in, err
	}
	if f.Employee == "" {
		return in, errors.New("employee is required")
	}

	status := appointment.Status(f.Status)
	if status == "" {
		status = appointment.InitialStatus()
	}
	if !status.Valid() {
		return in, fmt.Errorf("invalid status %q", f.Status)
	}

	in = dto.AppointmentInput{
		CustomerID:       uint(customerID),
		AppointmentDate:  date,
		AppointmentTime:  tod,
		Status:           status,
		TotalPrice:       price,
		EmployeeAssigned: f.Employee,
		Services:         f.Services,
	}
	if in.Services == nil {
		in.Services = []uint{}
	}
	return in, nil
}

func (f *appointmentForm) HasService(id uint) bool {
	for _, s := range f.Services {
		if s == id {
			return true
		}
	}
	return false
}

func (f *appointmentForm) IsCustomer(id uint) bool {
	return f.CustomerID == strconv.FormatUint(uint64(id), 10)
}

// ======================================================
// PAGES
// ======================================================

func (h *Handler) Appointments(c *gin.Context) {
	data := gin.H{}

	list, err := h.client(c).ListAppointments(c.Request.Context())
	if err != nil {
		h.logFailure(c, "list appointments failed", err)
		data["Error"] = msgFetchAppointments
	}

	var form *appointmentForm
	switch id := queryID(c, "edit"); {
	case id != 0 && err == nil:
		if a, ok := appointment.Find(list, id); ok {
			form = formFromAppointment(a)
		} else {
			data["Error"] = msgAppointmentGone
		}
	case c.Query("new") != "":
		form = newAppointmentForm(h.clock())
	}

	h.renderAppointments(c, http.StatusOK, list, form, data)
}

func (h *Handler) renderAppointments(
	c *gin.Context,
	status int,
	list []dto.Appointment,
	form *appointmentForm,
	data gin.H,
) {
	if data == nil {
		data = gin.H{}
	}

	crit, filter := parseFilter(c)
	p := appointment.Pipeline(list, crit, h.clock())

	data["Filter"] = filter
	data["Statuses"] = []appointment.Status{
		appointment.StatusScheduled,
		appointment.StatusCompleted,
		appointment.StatusCanceled,
	}
	data["ShowPast"] = c.Query("past") == "1"
	data["Upcoming"] = p.Upcoming
	data["Past"] = p.Past

	if form != nil {
		data["Form"] = form
		h.loadFormOptions(c, data)
	}
	h.render(c, status, "appointments", data)
}

// loadFormOptions fills the customer and service pickers of the form.
func (h *Handler) loadFormOptions(c *gin.Context, data gin.H) {
	ctx := c.Request.Context()
	cl := h.client(c)

	customers, err := cl.ListCustomers(ctx)
	if err != nil {
		h.logFailure(c, "list customers failed", err)
		data["FormError"] = msgFetchCustomers
	}
	services, err := cl.ListServices(ctx)
	if err != nil {
		h.logFailure(c, "list services failed", err)
		data["FormError"] = msgFetchServices
	}
	data["Customers"] = customers
	data["Services"] = services
}

// ======================================================
// WRITES
// ======================================================

func (h *Handler) CreateAppointment(c *gin.Context) {
	form := parseAppointmentForm(c)

	in, err := form.Input()
	if err != nil {
		h.rejectAppointmentForm(c, form, msgCreateAppointment)
		return
	}

	cl := h.client(c)
	list, err := ucAppointment.NewMutate(cl.ListAppointments).Execute(
		c.Request.Context(),
		func(ctx context.Context) error {
			_, err := cl.CreateAppointment(ctx, in)
			return err
		},
	)
	h.afterAppointmentWrite(c, list, err, form, msgCreateAppointment, okAppointmentCreated)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/appointments")
		return
	}

	form := parseAppointmentForm(c)
	form.ID = id

	in, err := form.Input()
	if err != nil {
		h.rejectAppointmentForm(c, form, msgUpdateAppointment)
		return
	}

	cl := h.client(c)
	list, err := ucAppointment.NewMutate(cl.ListAppointments).Execute(
		c.Request.Context(),
		func(ctx context.Context) error {
			_, err := cl.UpdateAppointment(ctx, id, in)
			return err
		},
	)
	h.afterAppointmentWrite(c, list, err, form, msgUpdateAppointment, okAppointmentUpdated)
}

// rejectAppointmentForm shows the form again without calling the API.
func (h *Handler) rejectAppointmentForm(c *gin.Context, form *appointmentForm, msg string) {
	data := gin.H{"Error": msg}
	list := h.reloadAppointments(c, data)
	h.renderAppointments(c, http.StatusBadRequest, list, form, data)
}

// afterAppointmentWrite renders the outcome of a form write. A failed
// write keeps the form open; a failed refetch still reports the write.
func (h *Handler) afterAppointmentWrite(
	c *gin.Context,
	list []dto.Appointment,
	err error,
	form *appointmentForm,
	failMsg, okMsg string,
) {
	switch {
	case err == nil:
		h.renderAppointments(c, http.StatusOK, list, nil, gin.H{"Success": okMsg})
	case errors.Is(err, ucAppointment.ErrRefetch):
		h.logFailure(c, "refetch appointments failed", err)
		h.renderAppointments(c, http.StatusOK, nil, nil, gin.H{
			"Success": okMsg,
			"Error":   msgFetchAppointments,
		})
	default:
		h.logFailure(c, "appointment write failed", err)
		data := gin.H{"Error": failMsg}
		list := h.reloadAppointments(c, data)
		h.renderAppointments(c, http.StatusOK, list, form, data)
	}
}

// ======================================================
// CONFIRMED ACTIONS
// ======================================================

// nextPage limits where a confirmed action may return to.
func nextPage(c *gin.Context) string {
	next := c.PostForm("next")
	if next == "" {
		next = c.Query("next")
	}
	if next == "/" {
		return "/"
	}
	return "/appointments"
}

func (h *Handler) ConfirmToggle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/appointments")
		return
	}

	a, err := h.client(c).FindAppointment(c.Request.Context(), id)
	if err != nil {
		h.missingAppointment(c, err, nextPage(c))
		return
	}

	h.render(c, http.StatusOK, "confirm", gin.H{
		"Message":      appointment.ConfirmToggleMessage(a.Status),
		"ConfirmLabel": appointment.ToggleLabel(a.Status),
		"Action":       fmt.Sprintf("/appointments/%d/toggle", id),
		"Next":         nextPage(c),
	})
}

func (h *Handler) ToggleStatus(c *gin.Context) {
	next := nextPage(c)
	id, ok := paramID(c)
	if !ok || !confirmed(c) {
		c.Redirect(http.StatusSeeOther, next)
		return
	}

	ctx := c.Request.Context()
	cl := h.client(c)

	a, err := cl.FindAppointment(ctx, id)
	if err != nil {
		h.missingAppointment(c, err, next)
		return
	}

	list, err := h.toggle.Execute(ctx, cl, *a)
	data := gin.H{}
	switch {
	case err == nil:
		data["Success"] = okStatusUpdated
	case errors.Is(err, ucAppointment.ErrRefetch):
		data["Success"] = okStatusUpdated
		data["Error"] = msgFetchAppointments
	default:
		data["Error"] = msgToggleStatus
		list = h.reloadAppointments(c, data)
	}

	if next == "/" {
		h.renderHome(c, list, data)
		return
	}
	h.renderAppointments(c, http.StatusOK, list, nil, data)
}

func (h *Handler) ConfirmDeleteAppointment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/appointments")
		return
	}

	h.render(c, http.StatusOK, "confirm", gin.H{
		"Message":      "Are you sure you want to delete this appointment?",
		"ConfirmLabel": "Delete",
		"Danger":       true,
		"Action":       fmt.Sprintf("/appointments/%d/delete", id),
		"Next":         "/appointments",
	})
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok || !confirmed(c) {
		c.Redirect(http.StatusSeeOther, "/appointments")
		return
	}

	cl := h.client(c)
	list, err := ucAppointment.NewMutate(cl.ListAppointments).Execute(
		c.Request.Context(),
		func(ctx context.Context) error {
			return cl.DeleteAppointment(ctx, id)
		},
	)
	h.afterAppointmentWrite(c, list, err, nil, msgDeleteAppointment, okAppointmentDeleted)
}

// missingAppointment handles a failed single-appointment lookup.
func (h *Handler) missingAppointment(c *gin.Context, err error, next string) {
	h.logFailure(c, "find appointment failed", err)

	msg := msgFetchAppointments
	if isNotFound(err) {
		msg = msgAppointmentGone
	}

	data := gin.H{"Error": msg}
	list := h.reloadAppointments(c, data)
	if next == "/" {
		h.renderHome(c, list, data)
		return
	}
	h.renderAppointments(c, http.StatusOK, list, nil, data)
}
