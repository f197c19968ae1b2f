package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "travelbook/internal/config"
	h "travelbook/internal/http/handlers"
	"travelbook/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	cc := cors.DefaultConfig()
	cc.AllowAllOrigins = true
	cc.AllowHeaders = append(cc.AllowHeaders, "Authorization", "X-Request-ID")
	cc.MaxAge = 24 * time.Hour
	r.Use(cors.New(cc))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		travels := api.Group("/travels")
		travels.GET("", h.ListTravels)
		travels.GET("/:id", h.GetTravel)
		travels.POST("", middleware.RequireAuth([]byte(env.JWTSecret)), middleware.RequireRole("admin"), h.CreateTravel)

		authed := api.Group("")
		authed.Use(middleware.RequireAuth([]byte(env.JWTSecret)))
		{
			bookings := authed.Group("/bookings")
			bookings.POST("", h.CreateBooking)
			bookings.GET("", h.ListMyBookings)
			bookings.GET("/:id", h.GetBooking)
			bookings.POST("/:id/cancel", h.CancelBooking)
			bookings.GET("/:id/ticket", h.GetBookingETicket)

			authed.GET("/profile", h.GetProfile)
			authed.PUT("/profile", h.UpdateProfile)
		}
	}

	return r
}
