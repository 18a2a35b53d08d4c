package schedule

import "pawhub/models"

// Overlaps reports whether two half-open slots [a.Start, a.End) and
// [b.Start, b.End) intersect. Touching slots do not overlap: a booking
// ending at 12:00 does not conflict with one starting at 12:00.
func Overlaps(a, b models.TimeSlot) bool {
	return a.Start < b.End && a.End > b.Start
}

// IsFullDay reports whether the slot is the canonical full-day sentinel.
func IsFullDay(ts models.TimeSlot) bool {
	return ts.Start == models.FullDayStart && ts.End == models.FullDayEnd
}

// FullDaySlot returns the canonical full-day sentinel (00:00-23:59).
func FullDaySlot() models.TimeSlot {
	return models.TimeSlot{Start: models.FullDayStart, End: models.FullDayEnd}
}

// OccupiedSlot returns the time window a booking occupies on the given date.
// An untimed booking occupies the whole day. A normal daily slot repeats on
// every day of the booking's range. An overnight slot (end not after start)
// occupies the evening of the first day, the morning of the last day, and
// blocks the days in between entirely. The date must lie within the
// booking's range; callers expand the range first.
func OccupiedSlot(b models.Booking, date string) models.TimeSlot {
	if b.Time == nil || IsFullDay(*b.Time) {
		return FullDaySlot()
	}
	t := *b.Time
	if t.Start < t.End {
		return t
	}
	switch date {
	case b.StartDate:
		return models.TimeSlot{Start: t.Start, End: models.FullDayEnd}
	case b.EndDate:
		return models.TimeSlot{Start: 0, End: t.End}
	default:
		return FullDaySlot()
	}
}
