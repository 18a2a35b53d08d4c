package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all route handlers for registration.
type HandlerBundle struct {
	// Schedule endpoints.
	CheckConflictsHandler    gin.HandlerFunc
	GetAvailableSlotsHandler gin.HandlerFunc
	GetScheduleHandler       gin.HandlerFunc
	GetUnavailableHandler    gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler     gin.HandlerFunc
	ApproveBookingHandler    gin.HandlerFunc
	CancelBookingHandler     gin.HandlerFunc
	RescheduleBookingHandler gin.HandlerFunc

	// Contractor availability endpoints.
	DeclareUnavailableHandler gin.HandlerFunc
	ClearUnavailableHandler   gin.HandlerFunc
}
