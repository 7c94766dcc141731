package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AutoServeHQ/service-scheduler/internal/config"
	"github.com/AutoServeHQ/service-scheduler/internal/handlers"
	infraRepo "github.com/AutoServeHQ/service-scheduler/internal/infra/repository"
	"github.com/AutoServeHQ/service-scheduler/internal/middleware"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
	"github.com/AutoServeHQ/service-scheduler/internal/notify"
	"github.com/AutoServeHQ/service-scheduler/internal/realtime"
	"github.com/AutoServeHQ/service-scheduler/internal/storage"
	ucBooking "github.com/AutoServeHQ/service-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	mailer := notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)
	dispatcher := notify.NewDispatcher(mailer, db)

	publisher := realtime.NewPublisher(cfg.RedisAddr, cfg.RedisPassword)

	s3store := storage.NewS3Store(storage.S3Config{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})
	photoUploader := storage.NewPhotoUploader(s3store)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	listSlotsUC := ucBooking.NewListAvailableSlots(bookingRepo)

	bookUC := ucBooking.NewBookAppointment(
		bookingRepo,
		dispatcher,
		publisher,
	)

	cancelUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		dispatcher,
		publisher,
	)

	updateStatusUC := ucBooking.NewUpdateAppointmentStatus(
		bookingRepo,
		publisher,
	)

	listMineUC := ucBooking.NewListMyAppointments(bookingRepo)
	listUpcomingUC := ucBooking.NewListUpcomingAppointments(bookingRepo)

	requestModUC := ucBooking.NewRequestSlotModification(bookingRepo)
	approveModUC := ucBooking.NewApproveModification(bookingRepo, publisher)
	rejectModUC := ucBooking.NewRejectModification(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		listSlotsUC,
		bookUC,
		cancelUC,
		updateStatusUC,
		listMineUC,
		listUpcomingUC,
		requestModUC,
	)

	vehicleHandler := handlers.NewVehicleHandler(db, photoUploader)
	notificationHandler := handlers.NewNotificationHandler(db)
	timeLogHandler := handlers.NewTimeLogHandler(db)
	partsHandler := handlers.NewPartsHandler(db)
	adminHandler := handlers.NewAdminHandler(db, approveModUC, rejectModUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// SLOTS (any authenticated user)
			// ------------------------------
			secured.GET("/slots", appointmentHandler.ListSlots)

			// ------------------------------
			// NOTIFICATIONS (any authenticated user)
			// ------------------------------
			secured.GET("/notifications", notificationHandler.List)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
			secured.PATCH("/notifications", notificationHandler.MarkAllRead)
			secured.DELETE("/notifications/:id", notificationHandler.Delete)

			// ------------------------------
			// CUSTOMER
			// ------------------------------
			customer := secured.Group("/")
			customer.Use(middleware.RequireRole(models.RoleCustomer))
			{
				customer.POST("/appointments", appointmentHandler.Book)
				customer.GET("/appointments/mine", appointmentHandler.ListMine)
				customer.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
				customer.POST("/appointments/:id/modifications", appointmentHandler.RequestModification)

				customer.GET("/vehicles", vehicleHandler.List)
				customer.POST("/vehicles", vehicleHandler.Add)
				customer.DELETE("/vehicles/:id", vehicleHandler.Delete)
				customer.POST("/vehicles/:id/photo", vehicleHandler.UploadPhoto)
			}

			// ------------------------------
			// EMPLOYEE + ADMIN
			// ------------------------------
			staff := secured.Group("/")
			staff.Use(middleware.RequireRole(models.RoleEmployee, models.RoleAdmin))
			{
				staff.GET("/appointments/upcoming", appointmentHandler.ListUpcoming)
				staff.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

				staff.POST("/time-logs/clock-in", timeLogHandler.ClockIn)
				staff.PATCH("/time-logs/:id/clock-out", timeLogHandler.ClockOut)
				staff.GET("/time-logs/mine", timeLogHandler.ListMine)
				staff.PATCH("/time-logs/:id", timeLogHandler.Update)
				staff.DELETE("/time-logs/:id", timeLogHandler.Delete)

				staff.POST("/part-requests", partsHandler.Create)
				staff.GET("/part-requests", partsHandler.List)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/employees/pending", adminHandler.ListPendingEmployees)
				admin.PATCH("/employees/:id/approve", adminHandler.ApproveEmployee)

				admin.PATCH("/appointments/:id/assign", adminHandler.AssignEmployee)

				admin.POST("/slots/generate", adminHandler.GenerateSlots)

				admin.GET("/modifications/pending", adminHandler.ListPendingModifications)
				admin.PATCH("/modifications/:id/approve", adminHandler.ApproveModification)
				admin.PATCH("/modifications/:id/reject", adminHandler.RejectModification)

				admin.GET("/time-logs/submitted", adminHandler.ListSubmittedTimeLogs)
				admin.PATCH("/time-logs/:id/approve", adminHandler.ApproveTimeLog)

				admin.GET("/part-requests/pending", adminHandler.ListPendingPartRequests)
				admin.PATCH("/part-requests/:id/approve", adminHandler.ApprovePartRequest)
				admin.PATCH("/part-requests/:id/reject", adminHandler.RejectPartRequest)
			}
		}
	}
}
