package schedule

import (
	"time"

	"pawhub/models"
)

// DateRange is an inclusive pair of "YYYY-MM-DD" dates.
type DateRange struct {
	StartDate string
	EndDate   string
}

// FindConflicts computes, per calendar day, where a proposed booking window
// would collide with the given bookings. The caller supplies only
// conflict-relevant bookings (confirmed statuses, or a wider policy for
// calendar overlays). A nil proposed slot means the proposal occupies whole
// days. The booking matching excludeBookingID is skipped, which lets an edit
// re-validate against all other bookings.
//
// One conflict is produced per overlapping day, so a multi-day booking can
// contribute several entries with the same BookingID. Callers wanting a
// boolean check len(conflicts) > 0.
func FindConflicts(bookings []models.Booking, rng DateRange, proposed *models.TimeSlot, excludeBookingID string) []models.BookingConflict {
	rangeStart, err := parseDate(rng.StartDate)
	if err != nil {
		return nil
	}
	rangeEnd, err := parseDate(rng.EndDate)
	if err != nil {
		return nil
	}

	var conflicts []models.BookingConflict
	for _, b := range bookings {
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}

		bStart, err := parseDate(b.StartDate)
		if err != nil {
			continue
		}
		bEnd, err := parseDate(b.EndDate)
		if err != nil {
			continue
		}

		// Day-granularity prefilter before expanding anything.
		if bStart.After(rangeEnd) || bEnd.Before(rangeStart) {
			continue
		}

		// Clamp the booking's range to the proposed range and walk the
		// intersection day by day.
		overlapStart := bStart
		if rangeStart.After(overlapStart) {
			overlapStart = rangeStart
		}
		overlapEnd := bEnd
		if rangeEnd.Before(overlapEnd) {
			overlapEnd = rangeEnd
		}

		for _, date := range ExpandDateRange(overlapStart.Format(dateLayout), overlapEnd.Format(dateLayout)) {
			occupied := OccupiedSlot(b, date)
			// An untimed side conservatively occupies the whole day; only
			// when both sides carry times does the interval test decide.
			if proposed != nil && !IsFullDay(occupied) && !Overlaps(*proposed, occupied) {
				continue
			}
			conflicts = append(conflicts, models.BookingConflict{
				BookingID:    b.ID,
				ConflictDate: date,
				ConflictTime: occupied,
				Services:     serviceNames(b),
			})
		}
	}
	return conflicts
}

// serviceNames resolves display names for a booking's services, falling back
// to the service id, then the booking's service type, then a placeholder.
func serviceNames(b models.Booking) []string {
	var names []string
	for _, ref := range b.Services {
		switch {
		case ref.Name != "":
			names = append(names, ref.Name)
		case ref.ServiceID != "":
			names = append(names, ref.ServiceID)
		}
	}
	if len(names) > 0 {
		return names
	}
	if b.ServiceType != "" {
		return []string{b.ServiceType}
	}
	return []string{"Unknown Service"}
}

// rangeLength is a small helper used by validation to reject inverted ranges
// without expanding them twice.
func rangeLength(startDate, endDate string) (int, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return 0, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return 0, err
	}
	days := int(end.Sub(start)/(24*time.Hour)) + 1
	if days < 0 {
		days = 0
	}
	return days, nil
}
