package handlers

import (
	"errors"
	"net/http"

	availabilityRepo "pawhub/database/repository/availability"
	"pawhub/models"
	"pawhub/services/schedule"
	"pawhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler manages contractor-declared unavailable periods.
type AvailabilityHandler struct {
	Service schedule.ScheduleService
	Logger  *zap.Logger
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc schedule.ScheduleService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Logger: logger}
}

// DeclareUnavailableRequest is the payload for declaring an unavailable period.
type DeclareUnavailableRequest struct {
	StartDate string           `json:"startDate" binding:"required"`
	EndDate   string           `json:"endDate" binding:"required"`
	Time      *models.TimeSlot `json:"time,omitempty"`
	Reason    string           `json:"reason,omitempty"`
}

// DeclareUnavailableHandler records a contractor-declared block.
func (h *AvailabilityHandler) DeclareUnavailableHandler(c *gin.Context) {
	contractorID := c.Param("id")
	var req DeclareUnavailableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	period := &models.UnavailablePeriod{
		ContractorID: contractorID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Time:         req.Time,
		Reason:       req.Reason,
	}
	if err := h.Service.DeclareUnavailablePeriod(c.Request.Context(), period); err != nil {
		var vErr *schedule.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", vErr.Error())
			return
		}
		h.Logger.Error("failed to declare unavailable period", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to declare unavailable period", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"period": period})
}

// ClearUnavailableHandler removes a declared block.
func (h *AvailabilityHandler) ClearUnavailableHandler(c *gin.Context) {
	periodID := c.Param("periodID")
	if err := h.Service.ClearUnavailablePeriod(c.Request.Context(), periodID); err != nil {
		if errors.Is(err, availabilityRepo.ErrPeriodNotFound) {
			utils.JSONError(c, http.StatusNotFound, "unavailable period not found", "")
			return
		}
		h.Logger.Error("failed to clear unavailable period", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear unavailable period", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
