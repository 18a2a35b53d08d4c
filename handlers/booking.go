package handlers

import (
	"errors"
	"net/http"

	bookingRepo "pawhub/database/repository/booking"
	"pawhub/models"
	"pawhub/services/booking"
	"pawhub/services/schedule"
	"pawhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler creates a pending booking request.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), input)
	if err != nil {
		h.respondWorkflowError(c, err, "failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

// ApproveBookingHandler confirms a pending booking.
func (h *BookingHandler) ApproveBookingHandler(c *gin.Context) {
	bookingID := c.Param("id")
	if err := h.Service.ApproveBooking(c.Request.Context(), bookingID); err != nil {
		h.respondWorkflowError(c, err, "failed to approve booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.StatusApproved})
}

// CancelBookingHandler cancels a booking.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	bookingID := c.Param("id")
	if err := h.Service.CancelBooking(c.Request.Context(), bookingID); err != nil {
		h.respondWorkflowError(c, err, "failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.StatusCancelled})
}

// RescheduleRequest is the payload for moving a booking to a new window.
type RescheduleRequest struct {
	StartDate string           `json:"startDate" binding:"required"`
	EndDate   string           `json:"endDate" binding:"required"`
	Time      *models.TimeSlot `json:"time,omitempty"`
}

// RescheduleBookingHandler moves a booking to a new window.
func (h *BookingHandler) RescheduleBookingHandler(c *gin.Context) {
	bookingID := c.Param("id")
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.RescheduleBooking(c.Request.Context(), bookingID, req.StartDate, req.EndDate, req.Time)
	if err != nil {
		h.respondWorkflowError(c, err, "failed to reschedule booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// respondWorkflowError maps workflow errors onto API responses. Conflicts
// are 409 with the offending days attached; a failed conflict check is 503
// so the client retries rather than assuming the window is free.
func (h *BookingHandler) respondWorkflowError(c *gin.Context, err error, message string) {
	var conflictErr *bookingRepo.ConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, gin.H{
			"message":   "requested window conflicts with existing bookings",
			"conflicts": conflictErr.Conflicts,
		})
		return
	}

	var vErr *schedule.ValidationError
	if errors.As(err, &vErr) {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", vErr.Error())
		return
	}

	var wErr *booking.WorkflowError
	if errors.As(err, &wErr) {
		utils.JSONError(c, http.StatusUnprocessableEntity, message, wErr.Message)
		return
	}

	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		return
	}

	var qErr *schedule.ScheduleQueryError
	if errors.As(err, &qErr) {
		h.Logger.Error(message, zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, message, "booking could not be validated; try again")
		return
	}

	h.Logger.Error(message, zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, message, "")
}
