package schedule

import (
	"context"

	"pawhub/models"
)

// ScheduleService exposes the contractor schedule queries consumed by the
// booking workflow and the calendar UI.
type ScheduleService interface {
	// CheckBookingConflicts lists the per-day conflicts a proposed booking
	// window would cause against the contractor's confirmed bookings. A nil
	// slot proposes whole days. Repository failures surface as
	// *ScheduleQueryError and must block booking creation.
	CheckBookingConflicts(ctx context.Context, contractorID, startDate, endDate string, proposed *models.TimeSlot, excludeBookingID string) ([]models.BookingConflict, error)
	// GetAvailableTimeSlots enumerates bookable windows of the given duration
	// on one day. Zero or negative duration falls back to the default.
	GetAvailableTimeSlots(ctx context.Context, contractorID, date string, durationMinutes int) ([]models.AvailabilitySlot, error)
	// GetContractorSchedule returns, per day of the range, the bookings in
	// includeStatuses plus the computed free slots. A nil includeStatuses
	// means confirmed bookings only; calendar overlays pass
	// models.CalendarOverlayStatuses to also show pending holds.
	GetContractorSchedule(ctx context.Context, contractorID, startDate, endDate string, includeStatuses []string) ([]models.DaySchedule, error)
	// GetUnavailablePeriods lists the contractor's declared unavailable
	// periods intersecting the range. Advisory only: these are shown next to
	// the booking form and are not part of conflict detection.
	GetUnavailablePeriods(ctx context.Context, contractorID, startDate, endDate string) ([]models.UnavailablePeriod, error)
	// DeclareUnavailablePeriod records a contractor-declared block.
	DeclareUnavailablePeriod(ctx context.Context, period *models.UnavailablePeriod) error
	// ClearUnavailablePeriod removes a declared block.
	ClearUnavailablePeriod(ctx context.Context, periodID string) error
}
