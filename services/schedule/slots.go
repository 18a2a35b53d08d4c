package schedule

import (
	"sort"

	"pawhub/models"
)

// Business-policy constants for slot generation. Working hours and step are
// deliberately coarse so long ranges do not explode into thousands of
// candidates.
const (
	WorkDayStartMinute = 6 * 60  // 06:00
	WorkDayEndMinute   = 22 * 60 // 22:00
	SlotStepMinutes    = 30

	// DefaultServiceDuration covers callers that do not know the service
	// duration up front.
	DefaultServiceDuration = 3 * 60
)

// GenerateAvailableSlots enumerates the bookable windows of durationMinutes
// on the given date, given the bookings already occupying that day, using the
// standard working-day window and step.
func GenerateAvailableSlots(dayBookings []models.Booking, date string, durationMinutes int) []models.TimeSlot {
	return GenerateSlotsWithin(dayBookings, date, durationMinutes, WorkDayStartMinute, WorkDayEndMinute, SlotStepMinutes)
}

// GenerateSlotsWithin is GenerateAvailableSlots with an explicit working-day
// window and candidate step. A day containing any full-day booking yields no
// slots at all. Candidate windows are tested against every booked interval
// with the half-open overlap rule and kept only when they clear all of them.
func GenerateSlotsWithin(dayBookings []models.Booking, date string, durationMinutes, dayStart, dayEnd, stepMinutes int) []models.TimeSlot {
	if stepMinutes <= 0 || dayEnd <= dayStart {
		return nil
	}
	if durationMinutes <= 0 {
		durationMinutes = DefaultServiceDuration
	}

	busy := make([]models.TimeSlot, 0, len(dayBookings))
	for _, b := range dayBookings {
		occupied := OccupiedSlot(b, date)
		if IsFullDay(occupied) {
			return nil
		}
		busy = append(busy, occupied)
	}
	sort.Slice(busy, func(i, j int) bool { return busy[i].Start < busy[j].Start })

	var slots []models.TimeSlot
	for start := dayStart; start+durationMinutes <= dayEnd; start += stepMinutes {
		candidate := models.TimeSlot{Start: start, End: start + durationMinutes}
		if overlapsAny(candidate, busy) {
			continue
		}
		slots = append(slots, candidate)
	}
	return slots
}

func overlapsAny(candidate models.TimeSlot, busy []models.TimeSlot) bool {
	for _, b := range busy {
		if Overlaps(candidate, b) {
			return true
		}
	}
	return false
}
