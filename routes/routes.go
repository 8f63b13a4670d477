package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gorent/backend-rental/booking"
	"github.com/gorent/backend-rental/config"
	"github.com/gorent/backend-rental/handlers"
	"github.com/gorent/backend-rental/middleware"
	"github.com/gorent/backend-rental/services"
	"github.com/gorent/backend-rental/store"
)

func SetupRoutes(router *gin.Engine, engine *booking.Engine, cars booking.CarStore, bookings booking.BookingStore, users store.UserStore, chat services.ChatProvider, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(users, cfg)
	carsHandler := handlers.NewCarsHandler(cars)
	bookingsHandler := handlers.NewBookingsHandler(engine, bookings)
	adminHandler := handlers.NewAdminHandler(engine, bookings)
	chatHandler := handlers.NewChatHandler(chat)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"message": "Server is running",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public routes - catalog and assistant (no auth required)
		v1.GET("/cars", carsHandler.GetCars)
		v1.GET("/cars/:id", carsHandler.GetCarByID)
		v1.POST("/chat", chatHandler.Chat)

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/auth/me", authHandler.GetMe)

			// Customer bookings
			customer := protected.Group("/bookings")
			{
				customer.GET("", bookingsHandler.GetMyBookings)
				customer.GET("/quote", bookingsHandler.GetQuote)
				customer.POST("", bookingsHandler.CreateBooking)
				customer.GET("/:id", bookingsHandler.GetBookingByID)
				customer.POST("/:id/cancel", bookingsHandler.CancelBooking)
			}

			// Admin routes
			admin := protected.Group("/admin")
			admin.Use(middleware.RoleMiddleware("admin"))
			{
				admin.GET("/bookings", adminHandler.GetAllBookings)
				admin.PUT("/bookings/:id/status", adminHandler.UpdateBookingStatus)
			}
		}
	}
}
