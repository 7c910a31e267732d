package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelierbarbier/reservation-api/internal/audit"
	"github.com/atelierbarbier/reservation-api/internal/cache"
	"github.com/atelierbarbier/reservation-api/internal/config"
	"github.com/atelierbarbier/reservation-api/internal/gcal"
	"github.com/atelierbarbier/reservation-api/internal/handlers"
	infraRepo "github.com/atelierbarbier/reservation-api/internal/infra/repository"
	"github.com/atelierbarbier/reservation-api/internal/mailer"
	"github.com/atelierbarbier/reservation-api/internal/middleware"
	"github.com/atelierbarbier/reservation-api/internal/storage"
	ucReservation "github.com/atelierbarbier/reservation-api/internal/usecase/reservation"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	appCache *cache.Cache,
	calendarClient *gcal.Client,
	mail *mailer.Mailer,
	s3 *storage.S3Storage,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// Optional integrations stay nil interfaces when disabled so the
	// usecases' nil checks actually fire.
	var calendarDep ucReservation.CalendarSync
	if calendarClient != nil {
		calendarDep = calendarClient
	}

	var mailerDep ucReservation.Mailer
	if mail != nil {
		mailerDep = mail
	}

	var cacheDep ucReservation.AvailabilityCache
	if appCache != nil {
		cacheDep = appCache
	}

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	availabilityUC := ucReservation.NewGetAvailability(
		reservationRepo,
		cacheDep,
	)

	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
		calendarDep,
		mailerDep,
		cacheDep,
	)

	updateReservationUC := ucReservation.NewUpdateReservation(
		reservationRepo,
		auditDispatcher,
		cacheDep,
	)

	cancelReservationUC := ucReservation.NewCancelReservation(
		reservationRepo,
		auditDispatcher,
		cacheDep,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	barberHandler := handlers.NewBarberHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	scheduleHandler := handlers.NewScheduleHandler(db, auditDispatcher, appCache)
	timeOffHandler := handlers.NewTimeOffHandler(db, auditDispatcher, appCache)

	reservationHandler := handlers.NewReservationHandler(
		reservationRepo,
		availabilityUC,
		createReservationUC,
		updateReservationUC,
		cancelReservationUC,
	)

	productHandler := handlers.NewProductHandler(db, auditDispatcher)
	commentHandler := handlers.NewCommentHandler(db)

	galleryHandler := handlers.NewGalleryHandler(db, s3, auditDispatcher)
	googleHandler := handlers.NewGoogleHandler(db, calendarClient)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", serviceHandler.ListActive)
		api.GET("/barbers", barberHandler.List)
		api.GET("/gallery", galleryHandler.List)
		api.GET("/products", productHandler.ListActive)
		api.POST("/comments", commentHandler.Create)

		api.GET("/reservations/availability", reservationHandler.Availability)
		api.POST("/reservations", reservationHandler.Create)

		// Google sends the browser here after consent.
		api.GET("/google/callback", googleHandler.Callback)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/barbers/:id", barberHandler.Get)
			admin.POST("/barbers", barberHandler.Create)
			admin.PATCH("/barbers/:id", barberHandler.Update)
			admin.DELETE("/barbers/:id", barberHandler.Delete)

			admin.GET("/services", serviceHandler.List)
			admin.GET("/services/:id", serviceHandler.Get)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/barbers/:id/schedules", scheduleHandler.ListByBarber)
			admin.POST("/schedules", scheduleHandler.Create)
			admin.PATCH("/schedules/:id", scheduleHandler.Update)
			admin.DELETE("/schedules/:id", scheduleHandler.Delete)

			admin.GET("/barbers/:id/time-offs", timeOffHandler.ListByBarber)
			admin.POST("/time-offs", timeOffHandler.Create)
			admin.PATCH("/time-offs/:id", timeOffHandler.Update)
			admin.DELETE("/time-offs/:id", timeOffHandler.Delete)

			// ------------------------------
			// RESERVATIONS
			// ------------------------------
			admin.GET("/reservations", reservationHandler.List)
			admin.GET("/reservations/:id", reservationHandler.Get)
			admin.PUT("/reservations/:id", reservationHandler.Update)
			admin.PATCH("/reservations/:id/cancel", reservationHandler.Cancel)
			admin.DELETE("/reservations/:id", reservationHandler.Delete)

			admin.GET("/products", productHandler.List)
			admin.GET("/products/:id", productHandler.Get)
			admin.POST("/products", productHandler.Create)
			admin.PATCH("/products/:id", productHandler.Update)
			admin.DELETE("/products/:id", productHandler.Delete)

			admin.GET("/comments", commentHandler.List)

			admin.POST("/gallery", galleryHandler.Upload)
			admin.PUT("/gallery/order", galleryHandler.Reorder)
			admin.DELETE("/gallery/:id", galleryHandler.Delete)

			admin.GET("/barbers/:id/google/auth-url", googleHandler.AuthURL)
			admin.GET("/barbers/:id/google/status", googleHandler.Status)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
