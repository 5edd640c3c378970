package routes

import (
	"net/http"
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterPublicRoutes registers endpoints reachable without a credential:
// login (which is how a credential is obtained) and availability.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.PUT("/user/:email", hb.Users.Login)
	r.GET("/available", hb.Availability.GetAvailable)
}

// RegisterAuthenticatedRoutes registers endpoints that require a valid token.
func RegisterAuthenticatedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := r.Group("")
	auth.Use(middleware.JWTAuthMiddleware())

	auth.POST("/create-payment-intent", hb.Booking.CreatePaymentIntent)
	auth.GET("/service", hb.Services.ListServices)
	auth.GET("/user", hb.Users.ListUsers)
	auth.GET("/booking", hb.Booking.GetBookings)
	auth.GET("/booking/:id", hb.Booking.GetBookingByID)
	auth.POST("/booking", hb.Booking.CreateBooking)
	auth.PATCH("/booking/:id", hb.Booking.PayBooking)
}

// RegisterAdminRoutes registers endpoints gated on the caller's stored
// admin role. The role lookup runs per request, after token verification.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware(hb.UserRepo))

	admin.GET("/admin/:email", hb.Users.CheckAdmin)
	admin.PUT("/user/admin/:email", hb.Users.GrantAdmin)
	admin.GET("/doctor", hb.Doctors.ListDoctors)
	admin.POST("/doctor", hb.Doctors.AddDoctor)
	admin.DELETE("/doctor/:email", hb.Doctors.RemoveDoctor)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterAuthenticatedRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
