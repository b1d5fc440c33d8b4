package routes

import (
	"time"

	"wavehouse/handlers"
	"wavehouse/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes serves the page shell, its assets and the SPA fallback.
func RegisterPageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.StaticFS("/static", web.Static())
	r.GET("/", hb.Page.Index)
	r.NoRoute(hb.Page.NotFound)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Page.HealthCheck)
}

// RegisterPublicRoutes registers the endpoints the booking and contact forms use.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.Page.Services)
		api.GET("/availability", hb.Booking.Availability)
		api.POST("/bookings", hb.Booking.CreateBooking)
		api.POST("/bookings/:id/deposit", hb.Booking.CreateDeposit)
		api.POST("/engineer-request", hb.Booking.EngineerRequest)
		api.POST("/mixing-request", hb.Booking.MixingRequest)
		api.POST("/contact", hb.Contact.Submit)
		api.POST("/admin/login", hb.LoginLimiter, hb.Admin.Login)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(hb.AdminAuth)
	{
		api.GET("/admin-stats", hb.Admin.Stats)
		api.GET("/bookings", hb.Booking.ListBookings)

		api.GET("/blocked-slots", hb.Blocked.List)
		api.POST("/blocked-slots", hb.Blocked.Create)
		api.POST("/delete-blocked-slot", hb.Blocked.Delete)
		api.POST("/delete-blocked-slots-by-date", hb.Blocked.DeleteByDate)
	}

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(hb.AdminAuth)
	{
		adminGroup.POST("/logout", hb.Admin.Logout)
		adminGroup.PUT("/bookings/:id", hb.Booking.UpdateBookingStatus)
		adminGroup.DELETE("/bookings/:id", hb.Booking.DeleteBooking)
		adminGroup.POST("/bulk-block", hb.Blocked.BulkBlock)
		adminGroup.DELETE("/blocked-slot/:id", hb.Blocked.DeleteByID)
		adminGroup.GET("/clients", hb.Admin.Clients)
		adminGroup.POST("/clients/:id/verify", hb.Admin.VerifyClient)
		adminGroup.GET("/contact-messages", hb.Admin.ContactMessages)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowOrigins []string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	if hb.LoginLimiter == nil {
		hb.LoginLimiter = func(c *gin.Context) { c.Next() }
	}

	RegisterHealthRoute(r, hb)
	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterPageRoutes(r, hb)
}
