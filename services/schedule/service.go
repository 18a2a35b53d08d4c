package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	availabilityRepo "pawhub/database/repository/availability"
	bookingRepo "pawhub/database/repository/booking"
	"pawhub/models"
	"pawhub/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultScheduleService implements ScheduleService on top of the booking
// and availability repositories. All computation is pure; the only state is
// an optional short-TTL read cache for the schedule display path.
type DefaultScheduleService struct {
	BookingRepo      bookingRepo.BookingRepository
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	Cache            *redis.Client
	CacheTTL         time.Duration
}

func (s *DefaultScheduleService) CheckBookingConflicts(ctx context.Context, contractorID, startDate, endDate string, proposed *models.TimeSlot, excludeBookingID string) ([]models.BookingConflict, error) {
	if err := validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	if err := validateProposedSlot(proposed); err != nil {
		return nil, err
	}

	bookings, err := s.BookingRepo.ListForContractorInRange(contractorID, startDate, endDate, models.ConfirmedStatuses)
	if err != nil {
		return nil, &ScheduleQueryError{Op: "list confirmed bookings", Err: err}
	}

	return FindConflicts(bookings, DateRange{StartDate: startDate, EndDate: endDate}, proposed, excludeBookingID), nil
}

func (s *DefaultScheduleService) GetAvailableTimeSlots(ctx context.Context, contractorID, date string, durationMinutes int) ([]models.AvailabilitySlot, error) {
	if _, err := parseDate(date); err != nil {
		return nil, &ValidationError{Field: "date", Reason: err.Error()}
	}

	bookings, err := s.BookingRepo.ListForContractorInRange(contractorID, date, date, models.ConfirmedStatuses)
	if err != nil {
		return nil, &ScheduleQueryError{Op: "list day bookings", Err: err}
	}

	var slots []models.AvailabilitySlot
	for _, ts := range GenerateAvailableSlots(bookings, date, durationMinutes) {
		slots = append(slots, models.AvailabilitySlot{
			Date:        date,
			Time:        ts,
			IsAvailable: true,
		})
	}
	return slots, nil
}

func (s *DefaultScheduleService) GetContractorSchedule(ctx context.Context, contractorID, startDate, endDate string, includeStatuses []string) ([]models.DaySchedule, error) {
	if err := validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	if includeStatuses == nil {
		includeStatuses = models.ConfirmedStatuses
	}

	cacheKey := fmt.Sprintf("schedule:%s:%s:%s:%s", contractorID, startDate, endDate, strings.Join(includeStatuses, ","))
	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		return cached, nil
	}

	bookings, err := s.BookingRepo.ListForContractorInRange(contractorID, startDate, endDate, includeStatuses)
	if err != nil {
		return nil, &ScheduleQueryError{Op: "list schedule bookings", Err: err}
	}

	var days []models.DaySchedule
	for _, date := range ExpandDateRange(startDate, endDate) {
		var dayBookings []models.Booking
		for _, b := range bookings {
			if b.StartDate <= date && date <= b.EndDate {
				dayBookings = append(dayBookings, b)
			}
		}
		days = append(days, models.DaySchedule{
			Date:           date,
			Bookings:       dayBookings,
			AvailableSlots: GenerateAvailableSlots(dayBookings, date, DefaultServiceDuration),
		})
	}

	s.cacheSet(ctx, cacheKey, days)
	return days, nil
}

func (s *DefaultScheduleService) GetUnavailablePeriods(ctx context.Context, contractorID, startDate, endDate string) ([]models.UnavailablePeriod, error) {
	if err := validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	periods, err := s.AvailabilityRepo.ListUnavailable(contractorID, startDate, endDate)
	if err != nil {
		return nil, &ScheduleQueryError{Op: "list unavailable periods", Err: err}
	}
	return periods, nil
}

func (s *DefaultScheduleService) DeclareUnavailablePeriod(ctx context.Context, period *models.UnavailablePeriod) error {
	if err := validateDateRange(period.StartDate, period.EndDate); err != nil {
		return err
	}
	if err := validateProposedSlot(period.Time); err != nil {
		return err
	}
	if period.ID == "" {
		period.ID = uuid.New().String()
	}
	period.CreatedAt = time.Now()
	if err := s.AvailabilityRepo.Declare(period); err != nil {
		return fmt.Errorf("failed to declare unavailable period: %w", err)
	}
	return nil
}

func (s *DefaultScheduleService) ClearUnavailablePeriod(ctx context.Context, periodID string) error {
	if err := s.AvailabilityRepo.Clear(periodID); err != nil {
		return fmt.Errorf("failed to clear unavailable period: %w", err)
	}
	return nil
}

// cacheGet reads a cached schedule. Cache failures only cost a recompute.
func (s *DefaultScheduleService) cacheGet(ctx context.Context, key string) ([]models.DaySchedule, bool) {
	if s.Cache == nil {
		return nil, false
	}
	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var days []models.DaySchedule
	if err := json.Unmarshal([]byte(data), &days); err != nil {
		utils.GetLogger().Warn("dropping undecodable schedule cache entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return days, true
}

func (s *DefaultScheduleService) cacheSet(ctx context.Context, key string, days []models.DaySchedule) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(days)
	if err != nil {
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := s.Cache.Set(ctx, key, data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache schedule", zap.String("key", key), zap.Error(err))
	}
}

func validateDateRange(startDate, endDate string) error {
	days, err := rangeLength(startDate, endDate)
	if err != nil {
		return &ValidationError{Field: "dateRange", Reason: err.Error()}
	}
	if days == 0 {
		return &ValidationError{Field: "dateRange", Reason: "end date is before start date"}
	}
	return nil
}

// validateProposedSlot rejects degenerate and out-of-range slots. Proposed
// slots are same-day windows; overnight stays are expressed through the
// booking's date range, not an inverted slot.
func validateProposedSlot(ts *models.TimeSlot) error {
	if ts == nil {
		return nil
	}
	if ts.Start < 0 || ts.End > models.MinutesPerDay {
		return &ValidationError{Field: "time", Reason: "slot is outside the day"}
	}
	if ts.Start >= ts.End {
		return &ValidationError{Field: "time", Reason: "slot must end after it starts"}
	}
	return nil
}
