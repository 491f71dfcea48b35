package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PamperedPaws01/groom-scheduler/internal/audit"
	"github.com/PamperedPaws01/groom-scheduler/internal/config"
	"github.com/PamperedPaws01/groom-scheduler/internal/handlers"
	infraRepo "github.com/PamperedPaws01/groom-scheduler/internal/infra/repository"
	"github.com/PamperedPaws01/groom-scheduler/internal/middleware"
	"github.com/PamperedPaws01/groom-scheduler/internal/pos"
	"github.com/PamperedPaws01/groom-scheduler/internal/slotlock"
	ucAppointment "github.com/PamperedPaws01/groom-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	posGateway := pos.NewClient(
		cfg.PosBaseURL,
		cfg.PosToken,
		cfg.PosTimeout,
		cfg.PosMaxAttempts,
		log,
	)

	locker := slotlock.New(cfg.RedisAddr, cfg.RedisPassword)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// 🧠 USE CASES: APPOINTMENTS
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		cfg.BusinessHours,
		cfg.GranularityMin,
		cfg.MinLeadMinutes,
		cfg.SalonTimezone,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		posGateway,
		locker,
		auditDispatcher,
		log,
		cfg.BusinessHours,
		cfg.MinLeadMinutes,
		cfg.SalonTimezone,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		posGateway,
		auditDispatcher,
		log,
		cfg.BusinessHours,
		cfg.MinLeadMinutes,
		cfg.SalonTimezone,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		posGateway,
		auditDispatcher,
		log,
	)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		getAvailabilityUC,
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		listByDateUC,
	)

	// ======================================================
	// 🌐 ROUTES
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/availability", appointmentHandler.GetAvailability)

		api.GET("/appointments", appointmentHandler.ListByDate)
		api.POST("/appointments", appointmentHandler.Create)
		api.PATCH("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)
	}
}
