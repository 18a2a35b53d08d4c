package routes

import (
	"net/http"
	"time"

	"pawhub/handlers"
	"pawhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers the schedule query endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.POST("/conflicts", hb.CheckConflictsHandler)
		api.GET("/:id", hb.GetScheduleHandler)
		api.GET("/:id/slots", hb.GetAvailableSlotsHandler)
		api.GET("/:id/unavailable", hb.GetUnavailableHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBookingHandler)
		api.PUT("/:id/approve", hb.ApproveBookingHandler)
		api.PUT("/:id/cancel", hb.CancelBookingHandler)
		api.PUT("/:id/reschedule", hb.RescheduleBookingHandler)
	}
}

// RegisterContractorRoutes registers contractor availability management.
func RegisterContractorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/contractors")
	{
		api.POST("/:id/unavailable", hb.DeclareUnavailableHandler)
		api.DELETE("/:id/unavailable/:periodID", hb.ClearUnavailableHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires up CORS and all endpoint groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterScheduleRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterContractorRoutes(r, hb)
}
