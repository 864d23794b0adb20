package web

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/lily-salon/internal/domain/report"
	"github.com/BruksfildServices01/lily-salon/internal/dto"
	"github.com/BruksfildServices01/lily-salon/internal/infra/apiclient"
	"github.com/BruksfildServices01/lily-salon/internal/middleware"
	"github.com/BruksfildServices01/lily-salon/internal/session"
	"github.com/BruksfildServices01/lily-salon/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/lily-salon/internal/usecase/appointment"
)

type Options struct {
	API      *apiclient.Client
	Sessions *session.Manager
	Clock    timezone.Clock
	Log      *zap.Logger

	CookieName   string
	SecureCookie bool
}

// Handler serves the admin console pages. Every page reads and writes
// through the REST API with the token of the signed-in session.
type Handler struct {
	api      *apiclient.Client
	sessions *session.Manager
	clock    timezone.Clock
	log      *zap.Logger
	toggle   *ucAppointment.ToggleStatus
	export   func(io.Writer, report.Report) error

	cookieName   string
	secureCookie bool
}

func New(opts Options) *Handler {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	clock := opts.Clock
	if clock == nil {
		clock = timezone.SalonClock(timezone.DefaultTimezone)
	}
	return &Handler{
		api:          opts.API,
		sessions:     opts.Sessions,
		clock:        clock,
		log:          log,
		toggle:       ucAppointment.NewToggleStatus(log),
		export:       report.WriteXLSX,
		cookieName:   opts.CookieName,
		secureCookie: opts.SecureCookie,
	}
}

// client is the API client bound to the request's session token.
func (h *Handler) client(c *gin.Context) *apiclient.Client {
	s := middleware.CurrentSession(c)
	if s == nil {
		return h.api
	}
	return h.api.WithToken(s.Token)
}

// render fills the keys every page needs and writes the "base" layout.
func (h *Handler) render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Page"] = page
	if s := middleware.CurrentSession(c); s != nil {
		data["User"] = s.User
		data["IsManager"] = s.IsManager()
	}
	c.HTML(status, "base", data)
}

func isNotFound(err error) bool {
	var se *apiclient.StatusError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}

func (h *Handler) logFailure(c *gin.Context, msg string, err error) {
	fields := []zap.Field{zap.String("path", c.Request.URL.Path), zap.Error(err)}

	var de *apiclient.DecodeError
	if errors.As(err, &de) {
		h.log.Error(msg+": malformed api response", fields...)
		return
	}
	if apiclient.IsUnauthorized(err) {
		h.log.Warn(msg+": api rejected session token", fields...)
		return
	}
	h.log.Warn(msg, fields...)
}

func (h *Handler) setCookie(c *gin.Context, sid string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, sid, 0, "/", "", h.secureCookie, true)
}

func (h *Handler) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secureCookie, true)
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func queryID(c *gin.Context, key string) uint {
	id, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

// confirmed reports whether a destructive POST carried confirm=yes.
func confirmed(c *gin.Context) bool {
	return c.PostForm("confirm") == "yes"
}

// ======================================================
// RELOADS
// ======================================================

// The reload helpers refetch a list after a failed write or lookup. A failed
// reload is reported under "FetchError" so the page does not pass an empty
// table off as the current data.

func (h *Handler) reloadAppointments(c *gin.Context, data gin.H) []dto.Appointment {
	list, err := h.client(c).ListAppointments(c.Request.Context())
	if err != nil {
		h.reloadFailed(c, data, "reload appointments failed", msgFetchAppointments, err)
	}
	return list
}

func (h *Handler) reloadCustomers(c *gin.Context, data gin.H) []dto.Customer {
	list, err := h.client(c).ListCustomers(c.Request.Context())
	if err != nil {
		h.reloadFailed(c, data, "reload customers failed", msgFetchCustomers, err)
	}
	return list
}

func (h *Handler) reloadServices(c *gin.Context, data gin.H) []dto.Service {
	list, err := h.client(c).ListServices(c.Request.Context())
	if err != nil {
		h.reloadFailed(c, data, "reload services failed", msgFetchServices, err)
	}
	return list
}

func (h *Handler) reloadFailed(c *gin.Context, data gin.H, logMsg, msg string, err error) {
	h.logFailure(c, logMsg, err)
	if data["Error"] != msg {
		data["FetchError"] = msg
	}
}
