package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/lily-salon/internal/audit"
	"github.com/BruksfildServices01/lily-salon/internal/config"
	"github.com/BruksfildServices01/lily-salon/internal/handlers"
	infraRepo "github.com/BruksfildServices01/lily-salon/internal/infra/repository"
	"github.com/BruksfildServices01/lily-salon/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/lily-salon/internal/usecase/appointment"
)

// RegisterRoutes mounts the management API under /api/management.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	// ======================================================
	// USE CASES (APPOINTMENTS)
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	replaceAppointmentUC := ucAppointment.NewReplaceAppointment(appointmentRepo, auditDispatcher)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, log)
	meHandler := handlers.NewMeHandler(db)
	customerHandler := handlers.NewCustomerHandler(db, auditDispatcher, log)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		replaceAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		log,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api/management")
	{
		api.POST("/login/", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/logout/", authHandler.Logout)
			secured.GET("/user/", meHandler.GetMe)

			managerOnly := middleware.RequireManager()

			// ------------------------------
			// CUSTOMERS
			// ------------------------------
			secured.GET("/customers/", customerHandler.List)
			secured.POST("/customers/", customerHandler.Create)
			secured.PUT("/customers/:id/", customerHandler.Update)
			secured.DELETE("/customers/:id/", managerOnly, customerHandler.Delete)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/services/", serviceHandler.List)
			secured.POST("/services/", serviceHandler.Create)
			secured.PUT("/services/:id/", serviceHandler.Update)
			secured.DELETE("/services/:id/", managerOnly, serviceHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments/", appointmentHandler.List)
			secured.GET("/appointments/customer/:id/", appointmentHandler.ListForCustomer)
			secured.POST("/appointments/", appointmentHandler.Create)
			secured.PUT("/appointments/:id/", appointmentHandler.Update)
			secured.DELETE("/appointments/:id/", managerOnly, appointmentHandler.Delete)

			secured.GET("/audit-logs/", managerOnly, auditLogsHandler.List)
		}
	}
}
