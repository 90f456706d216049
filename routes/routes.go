package routes

import (
	"net/http"

	"autocare-backend/config"
	"autocare-backend/controllers"
	"autocare-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Vehicle Service Booking API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"auth":     "/api/auth",
				"bookings": "/api/bookings",
				"services": "/api/services",
			},
		})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	bookings := r.Group("/api/bookings")
	{
		// Fixed-path routes first so /:id does not shadow them
		bookings.GET("/stats/dashboard", utils.AuthMiddleware(), controllers.GetDashboardStats)
		bookings.GET("/customer/:email", controllers.GetBookingsByEmail)

		bookings.GET("", controllers.GetBookings)
		bookings.POST("", controllers.CreateBooking)
		bookings.GET("/:id", controllers.GetBooking)
		bookings.PUT("/:id/status", utils.AuthMiddleware(), controllers.UpdateBookingStatus)
		bookings.DELETE("/:id", utils.AuthMiddleware(), controllers.DeleteBooking)
	}

	catalog := r.Group("/api/services")
	{
		catalog.GET("", controllers.GetServices)
		catalog.GET("/:id", controllers.GetService)

		catalog.POST("", utils.AuthMiddleware(), controllers.CreateService)
		catalog.PUT("/:id", utils.AuthMiddleware(), controllers.UpdateService)
		catalog.DELETE("/:id", utils.AuthMiddleware(), controllers.DeleteService)
	}

	return r
}
