package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/craftfolio/booking-engine/internal/handlers"
	infraRepo "github.com/craftfolio/booking-engine/internal/infra/repository"
	"github.com/craftfolio/booking-engine/internal/middleware"
	"github.com/craftfolio/booking-engine/internal/notify"
	"github.com/craftfolio/booking-engine/internal/store"
	ucAvailability "github.com/craftfolio/booking-engine/internal/usecase/availability"
	ucBooking "github.com/craftfolio/booking-engine/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, kv store.Store, notifier *notify.Dispatcher) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	tenantRepo := infraRepo.NewTenantStoreRepository(kv)
	sessionRepo := infraRepo.NewSessionStoreRepository(kv)

	// ======================================================
	// USE CASES
	// ======================================================
	daySlotsUC := ucAvailability.NewGetDaySlots(tenantRepo)
	monthDatesUC := ucAvailability.NewGetMonthDates(tenantRepo)

	bookUC := ucBooking.NewBook(tenantRepo, notifier)
	listUC := ucBooking.NewList(tenantRepo)
	updateUC := ucBooking.NewUpdate(tenantRepo)
	confirmUC := ucBooking.NewConfirm(tenantRepo, notifier)
	cancelUC := ucBooking.NewCancel(tenantRepo, notifier)
	pendingCountUC := ucBooking.NewPendingCount(tenantRepo)
	cleanupUC := ucBooking.NewCleanup(tenantRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(sessionRepo)
	settingsHandler := handlers.NewSettingsHandler(tenantRepo)
	availabilityHandler := handlers.NewAvailabilityHandler(daySlotsUC, monthDatesUC)
	bookingHandler := handlers.NewBookingHandler(bookUC, listUC, cancelUC)
	adminHandler := handlers.NewAdminHandler(
		listUC,
		updateUC,
		confirmUC,
		cancelUC,
		pendingCountUC,
		cleanupUC,
	)

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API (anonymous visitors)
		// ------------------------------
		publicAPI := api.Group("/public/:tenant")
		{
			publicAPI.GET("/settings", settingsHandler.Get)
			publicAPI.GET("/availability", availabilityHandler.ByDate)
			publicAPI.GET("/availability/dates", availabilityHandler.ByMonth)
			publicAPI.POST("/appointments", bookingHandler.Create)
			publicAPI.GET("/appointments", bookingHandler.List)
			publicAPI.POST("/appointments/:id/cancel", bookingHandler.Cancel)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/admin/register", authHandler.Register)
		api.POST("/admin/login", authHandler.Login)

		// ------------------------------
		// ADMIN API (session + CSRF)
		// ------------------------------
		admin := api.Group("/admin/:tenant")
		admin.Use(middleware.AuthMiddleware(sessionRepo))
		{
			admin.PUT("/settings", settingsHandler.Update)

			admin.GET("/appointments", adminHandler.List)
			admin.PATCH("/appointments/:id", adminHandler.Update)
			admin.POST("/appointments/:id/confirm", adminHandler.Confirm)
			admin.POST("/appointments/:id/cancel", adminHandler.Cancel)
			admin.GET("/appointments/pending-count", adminHandler.PendingCount)
			admin.POST("/appointments/cleanup", adminHandler.Cleanup)
		}
	}
}
