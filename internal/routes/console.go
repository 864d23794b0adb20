package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/lily-salon/internal/middleware"
	"github.com/BruksfildServices01/lily-salon/internal/session"
	"github.com/BruksfildServices01/lily-salon/internal/web"
)

const readyTimeout = 2 * time.Second

type Console struct {
	Handler    *web.Handler
	Sessions   *session.Manager
	CookieName string
	Log        *zap.Logger

	// Ready backs /health/ready; nil means always ready.
	Ready func(ctx context.Context) error
	// Metrics is served at /metrics when set.
	Metrics http.Handler
}

// RegisterConsoleRoutes mounts the admin console pages.
func RegisterConsoleRoutes(r *gin.Engine, con Console) {
	r.SetHTMLTemplate(web.Templates())

	h := con.Handler

	// ======================================================
	// HEALTH / METRICS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/health/ready", func(c *gin.Context) {
		if con.Ready != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
			defer cancel()

			if err := con.Ready(ctx); err != nil {
				con.Log.Warn("readiness check failed", zap.Error(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if con.Metrics != nil {
		r.GET("/metrics", gin.WrapH(con.Metrics))
	}

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET(middleware.LoginPath, h.LoginPage)
	r.POST(middleware.LoginPath, h.Login)
	r.POST("/logout", h.Logout)

	// ======================================================
	// SIGNED IN
	// ======================================================
	app := r.Group("/", middleware.SessionGate(con.Sessions, con.CookieName, con.Log))
	managerOnly := middleware.RequireManagerSession()

	app.GET("/", h.Home)

	app.GET("/appointments", h.Appointments)
	app.POST("/appointments", h.CreateAppointment)
	app.POST("/appointments/:id", h.UpdateAppointment)
	app.GET("/appointments/:id/toggle", h.ConfirmToggle)
	app.POST("/appointments/:id/toggle", h.ToggleStatus)
	app.GET("/appointments/:id/delete", managerOnly, h.ConfirmDeleteAppointment)
	app.POST("/appointments/:id/delete", managerOnly, h.DeleteAppointment)

	app.GET("/customers", h.Customers)
	app.POST("/customers", h.CreateCustomer)
	app.POST("/customers/:id", h.UpdateCustomer)
	app.GET("/customers/:id/appointments", h.CustomerHistory)
	app.GET("/customers/:id/delete", managerOnly, h.ConfirmDeleteCustomer)
	app.POST("/customers/:id/delete", managerOnly, h.DeleteCustomer)

	app.GET("/services", h.Services)
	app.POST("/services", h.CreateService)
	app.POST("/services/:id", h.UpdateService)
	app.GET("/services/:id/delete", managerOnly, h.ConfirmDeleteService)
	app.POST("/services/:id/delete", managerOnly, h.DeleteService)

	manager := app.Group("/manager", managerOnly)
	manager.GET("", h.Manager)
	manager.GET("/report.xlsx", h.ReportXLSX)
}
