package routes

import (
	"net/http"
	"time"

	"consultly/handlers"
	"consultly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/me", hb.GetProfileHandler)
	}
}

// RegisterExpertRoutes registers expert discovery and management endpoints.
func RegisterExpertRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/experts")
	{
		// Public discovery endpoints.
		api.GET("", hb.ListExpertsHandler)
		api.GET("/featured", hb.ListFeaturedExpertsHandler)
		api.GET("/:id", hb.GetExpertHandler)
		api.GET("/:id/availability", hb.GetAvailabilityHandler)
		api.GET("/:id/reviews", hb.ListReviewsHandler)

		// Endpoints that modify expert data require authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.PUT("/:id/availability", hb.UpdateAvailabilityHandler)
		protected.PUT("/:id/status", hb.UpdateStatusHandler)
		protected.POST("/:id/reviews", hb.CreateReviewHandler)
	}

	r.GET("/api/categories", hb.ListCategoriesHandler)
}

// RegisterBookingRoutes sets up the booking workflow and booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	sessionGroup := r.Group("/api/booking")
	{
		sessionGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		sessionGroup.POST("/session", hb.InitiateSessionHandler)
		sessionGroup.PUT("/session/:sessionID", hb.UpdateSessionHandler)
		sessionGroup.POST("/session/:sessionID/confirm", hb.ConfirmBookingHandler)
		sessionGroup.DELETE("/session/:sessionID", hb.CancelSessionHandler)
	}

	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		bookingGroup.POST("", hb.CreateBookingHandler)
		bookingGroup.GET("", hb.ListBookingsHandler)
		bookingGroup.GET("/:id", hb.GetBookingHandler)
		bookingGroup.POST("/:id/cancel", hb.CancelBookingHandler)
		bookingGroup.POST("/:id/reschedule", hb.RescheduleBookingHandler)
	}
}

// RegisterEventRoutes exposes the live event stream.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/ws", hb.WebSocketHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Consultly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterExpertRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterHealthRoute(r)
}
