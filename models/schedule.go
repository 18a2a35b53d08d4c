package models

// BookingConflict records one calendar day on which a proposed booking would
// overlap an existing booking. A multi-day booking yields one conflict per
// overlapping day, so the same BookingID may appear several times.
type BookingConflict struct {
	BookingID    string   `json:"bookingId"`
	ConflictDate string   `json:"conflictDate"` // "YYYY-MM-DD"
	ConflictTime TimeSlot `json:"conflictTime"` // the existing booking's occupied slot
	Services     []string `json:"services"`
}

// AvailabilitySlot is one candidate bookable window on one day.
type AvailabilitySlot struct {
	Date                string            `json:"date"`
	Time                TimeSlot          `json:"time"`
	IsAvailable         bool              `json:"isAvailable"`
	ConflictingBookings []BookingConflict `json:"conflictingBookings,omitempty"`
}

// DaySchedule is the per-day structure a booking calendar renders: the
// bookings occupying the day plus the computed free slots.
type DaySchedule struct {
	Date           string     `json:"date"`
	Bookings       []Booking  `json:"bookings"`
	AvailableSlots []TimeSlot `json:"availableSlots"`
}
