package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"pawhub/models"
	"pawhub/services/schedule"
	"pawhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes the contractor schedule queries over HTTP.
type ScheduleHandler struct {
	Service schedule.ScheduleService
	Logger  *zap.Logger
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Service: svc, Logger: logger}
}

// CheckConflictsRequest is the payload for a conflict probe.
type CheckConflictsRequest struct {
	ContractorID     string           `json:"contractorId" binding:"required"`
	StartDate        string           `json:"startDate" binding:"required"`
	EndDate          string           `json:"endDate" binding:"required"`
	Time             *models.TimeSlot `json:"time,omitempty"`
	ExcludeBookingID string           `json:"excludeBookingId,omitempty"`
}

// CheckConflictsHandler reports the per-day conflicts a proposed window
// would cause. A store failure is a 503, never an empty conflict list.
func (h *ScheduleHandler) CheckConflictsHandler(c *gin.Context) {
	var req CheckConflictsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	conflicts, err := h.Service.CheckBookingConflicts(c.Request.Context(), req.ContractorID, req.StartDate, req.EndDate, req.Time, req.ExcludeBookingID)
	if err != nil {
		var vErr *schedule.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", vErr.Error())
			return
		}
		h.Logger.Error("conflict check failed", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "failed to validate booking window", "conflict check could not be completed; try again")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hasConflicts": len(conflicts) > 0,
		"conflicts":    conflicts,
	})
}

// GetAvailableSlotsHandler lists bookable windows for one day. This is a
// display aid: if the store read fails, it degrades to an empty suggestion
// list instead of blocking, since the authoritative conflict check still
// runs at booking time.
func (h *ScheduleHandler) GetAvailableSlotsHandler(c *gin.Context) {
	contractorID := c.Param("id")
	date := c.Query("date")
	duration := 0
	if raw := c.Query("duration"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "duration must be an integer number of minutes")
			return
		}
		duration = parsed
	}

	slots, err := h.Service.GetAvailableTimeSlots(c.Request.Context(), contractorID, date, duration)
	if err != nil {
		var vErr *schedule.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", vErr.Error())
			return
		}
		h.Logger.Warn("slot generation degraded to empty", zap.String("contractorID", contractorID), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"slots": []models.AvailabilitySlot{}, "warning": "suggestions unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// GetScheduleHandler returns the per-day schedule a booking calendar
// renders. ?includePending=true widens the booking overlay to pending holds.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	contractorID := c.Param("id")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	statuses := models.ConfirmedStatuses
	if c.Query("includePending") == "true" {
		statuses = models.CalendarOverlayStatuses
	}

	days, err := h.Service.GetContractorSchedule(c.Request.Context(), contractorID, startDate, endDate, statuses)
	if err != nil {
		var vErr *schedule.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", vErr.Error())
			return
		}
		h.Logger.Error("schedule fetch failed", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "failed to load schedule", "schedule could not be loaded; try again")
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": days})
}

// GetUnavailableHandler lists the contractor's declared unavailable periods.
func (h *ScheduleHandler) GetUnavailableHandler(c *gin.Context) {
	contractorID := c.Param("id")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	periods, err := h.Service.GetUnavailablePeriods(c.Request.Context(), contractorID, startDate, endDate)
	if err != nil {
		var vErr *schedule.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", vErr.Error())
			return
		}
		h.Logger.Error("unavailable periods fetch failed", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "failed to load unavailability", "unavailable periods could not be loaded; try again")
		return
	}

	c.JSON(http.StatusOK, gin.H{"unavailable": periods})
}
