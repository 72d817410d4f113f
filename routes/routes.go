package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"promarket/handlers"
	"promarket/middleware"
	"promarket/utils"
)

// Deps carries the wired handlers and shared infrastructure the routes need.
type Deps struct {
	Booking  *handlers.BookingHandler
	Payments *handlers.PaymentsHandler
	Flash    *utils.FlashCodec
	Sessions *redis.Client
}

// RegisterBookingRoutes sets up the booking lifecycle pages.
func RegisterBookingRoutes(r *gin.Engine, d *Deps) {
	bookings := r.Group("/bookings")
	{
		// The failure page is reachable straight from the processor redirect
		// and renders without a session.
		bookings.GET("/:id/payment/failed", handlers.PaymentFailed)

		authed := bookings.Group("")
		authed.Use(middleware.SessionAuthMiddleware(d.Sessions))
		authed.GET("/:id", d.Booking.Show)
		authed.POST("/:id/quote", d.Booking.SubmitQuote)
		authed.POST("/:id/respond", d.Booking.Respond)
		authed.POST("/:id/status", d.Booking.UpdateStatus)
	}
}

// RegisterPaymentsRoutes sets up the professional's payments dashboard.
func RegisterPaymentsRoutes(r *gin.Engine, d *Deps) {
	dash := r.Group("/dashboard/payments")
	{
		dash.Use(middleware.SessionAuthMiddleware(d.Sessions))
		dash.GET("", d.Payments.Dashboard)
		dash.GET("/open", d.Payments.OpenDashboard)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, d *Deps) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.FlashMiddleware(d.Flash))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, d)
	RegisterPaymentsRoutes(r, d)
}
