package routes

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/edbarbearia/barbershop-api/internal/audit"
	"github.com/edbarbearia/barbershop-api/internal/config"
	"github.com/edbarbearia/barbershop-api/internal/handlers"
	infraRepo "github.com/edbarbearia/barbershop-api/internal/infra/repository"
	"github.com/edbarbearia/barbershop-api/internal/mailer"
	"github.com/edbarbearia/barbershop-api/internal/middleware"
	"github.com/edbarbearia/barbershop-api/internal/payments"
	"github.com/edbarbearia/barbershop-api/internal/rbac"
	"github.com/edbarbearia/barbershop-api/internal/storage"
	ucBooking "github.com/edbarbearia/barbershop-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	checker := rbac.NewChecker(db)
	uploader := storage.NewUploader(cfg)

	var checkout *payments.Checkout
	if cfg.MercadoPagoToken != "" {
		var err error
		checkout, err = payments.NewCheckout(cfg.MercadoPagoToken)
		if err != nil {
			log.Printf("mercadopago desabilitado: %v", err)
		}
	}

	// ======================================================
	// USE CASES — BOOKING ENGINE
	// ======================================================
	getSlotsUC := ucBooking.NewGetSlots(scheduleRepo)
	createBookingUC := ucBooking.NewCreateBooking(scheduleRepo, auditDispatcher)
	updateStatusUC := ucBooking.NewUpdateStatus(scheduleRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, checker, mailer.LogMailer{})
	userHandler := handlers.NewUserHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	barberHandler := handlers.NewBarberHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(db)
	bookingHandler := handlers.NewBookingHandler(db, createBookingUC, updateStatusUC)

	productHandler := handlers.NewProductHandler(db, checkout)
	courseHandler := handlers.NewCourseHandler(db, checkout)
	settingsHandler := handlers.NewSettingsHandler(db)
	uploadHandler := handlers.NewUploadHandler(uploader)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, getSlotsUC, createBookingUC)

	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (site)
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.RateLimit(rdb, 60, time.Minute))
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/products", publicHandler.ListProducts)
			publicAPI.GET("/courses", publicHandler.ListCourses)
			publicAPI.GET("/settings", publicHandler.GetSettings)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/bookings",
				middleware.RateLimit(rdb, 10, time.Minute),
				publicHandler.CreateBooking,
			)
			publicAPI.GET("/products/:id/checkout", productHandler.CheckoutLink)
			publicAPI.GET("/courses/:id/checkout", courseHandler.CheckoutLink)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/request-reset", authHandler.RequestPasswordReset)
		api.POST("/auth/reset-password", authHandler.ResetPassword)

		// ------------------------------
		// PAINEL ADMIN (JWT + permissão por recurso)
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/me", authHandler.Me)
			admin.POST("/logout", authHandler.Logout)

			perm := func(resource, action string) gin.HandlerFunc {
				return middleware.RequirePermission(checker, resource, action)
			}

			admin.GET("/users", perm("users", rbac.ActionView), userHandler.List)
			admin.POST("/users", perm("users", rbac.ActionCreate), userHandler.Create)
			admin.PUT("/users/:id", perm("users", rbac.ActionUpdate), userHandler.Update)
			admin.DELETE("/users/:id", perm("users", rbac.ActionDelete), userHandler.Delete)
			admin.GET("/groups", perm("users", rbac.ActionView), userHandler.ListGroups)

			admin.GET("/services", perm("services", rbac.ActionView), serviceHandler.List)
			admin.POST("/services", perm("services", rbac.ActionCreate), serviceHandler.Create)
			admin.PUT("/services/:id", perm("services", rbac.ActionUpdate), serviceHandler.Update)
			admin.DELETE("/services/:id", perm("services", rbac.ActionDelete), serviceHandler.Delete)
			admin.GET("/categories", perm("services", rbac.ActionView), serviceHandler.ListCategories)
			admin.POST("/categories", perm("services", rbac.ActionCreate), serviceHandler.CreateCategory)
			admin.DELETE("/categories/:id", perm("services", rbac.ActionDelete), serviceHandler.DeleteCategory)

			admin.GET("/barbers", perm("barbers", rbac.ActionView), barberHandler.List)
			admin.POST("/barbers", perm("barbers", rbac.ActionCreate), barberHandler.Create)
			admin.PUT("/barbers/:id", perm("barbers", rbac.ActionUpdate), barberHandler.Update)
			admin.DELETE("/barbers/:id", perm("barbers", rbac.ActionDelete), barberHandler.Delete)

			admin.GET("/availability", perm("barbers", rbac.ActionView), availabilityHandler.List)
			admin.POST("/availability", perm("barbers", rbac.ActionUpdate), availabilityHandler.Create)
			admin.PUT("/availability", perm("barbers", rbac.ActionUpdate), availabilityHandler.Update)
			admin.DELETE("/availability", perm("barbers", rbac.ActionUpdate), availabilityHandler.Delete)

			admin.GET("/bookings", perm("bookings", rbac.ActionView), bookingHandler.List)
			admin.GET("/bookings/:id", perm("bookings", rbac.ActionView), bookingHandler.Get)
			admin.POST("/bookings", perm("bookings", rbac.ActionCreate), bookingHandler.Create)
			admin.PUT("/bookings/:id", perm("bookings", rbac.ActionUpdate), bookingHandler.UpdateStatus)
			admin.DELETE("/bookings/:id", perm("bookings", rbac.ActionDelete), bookingHandler.Delete)

			admin.GET("/products", perm("products", rbac.ActionView), productHandler.List)
			admin.POST("/products", perm("products", rbac.ActionCreate), productHandler.Create)
			admin.PUT("/products/:id", perm("products", rbac.ActionUpdate), productHandler.Update)
			admin.DELETE("/products/:id", perm("products", rbac.ActionDelete), productHandler.Delete)
			admin.GET("/product-categories", perm("products", rbac.ActionView), productHandler.ListCategories)
			admin.POST("/product-categories", perm("products", rbac.ActionCreate), productHandler.CreateCategory)

			admin.GET("/courses", perm("courses", rbac.ActionView), courseHandler.List)
			admin.POST("/courses", perm("courses", rbac.ActionCreate), courseHandler.Create)
			admin.PUT("/courses/:id", perm("courses", rbac.ActionUpdate), courseHandler.Update)
			admin.DELETE("/courses/:id", perm("courses", rbac.ActionDelete), courseHandler.Delete)

			admin.GET("/settings", perm("settings", rbac.ActionView), settingsHandler.Get)
			admin.PUT("/settings", perm("settings", rbac.ActionUpdate), settingsHandler.Update)

			admin.POST("/uploads", perm("settings", rbac.ActionUpdate), uploadHandler.Upload)

			admin.GET("/audit-logs", perm("settings", rbac.ActionView), auditLogsHandler.List)
		}
	}
}
