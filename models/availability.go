package models

import "time"

// UnavailablePeriod is a contractor-declared block of time they will not
// accept bookings for. It is an advisory signal shown alongside the booking
// request form; the conflict engine itself only considers bookings.
type UnavailablePeriod struct {
	ID           string    `bson:"id" json:"id"`
	ContractorID string    `bson:"contractor_id" json:"contractorId"`
	StartDate    string    `bson:"start_date" json:"startDate"` // "YYYY-MM-DD"
	EndDate      string    `bson:"end_date" json:"endDate"`     // "YYYY-MM-DD", inclusive
	Time         *TimeSlot `bson:"time,omitempty" json:"time,omitempty"`
	Reason       string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
