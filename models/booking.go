package models

import "time"

// Booking lifecycle statuses.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ConfirmedStatuses lists the statuses that count as conflict sources when
// validating a proposed booking. Pending requests do not reserve the slot.
var ConfirmedStatuses = []string{StatusApproved, StatusCompleted}

// CalendarOverlayStatuses additionally includes pending requests, for
// calendar displays that show every hold on a contractor's day.
var CalendarOverlayStatuses = []string{StatusPending, StatusApproved, StatusCompleted}

// ServiceRef identifies one pet-care service attached to a booking.
type ServiceRef struct {
	ServiceID string `bson:"service_id" json:"serviceId"`
	Name      string `bson:"name,omitempty" json:"name,omitempty"`
}

// Booking represents a reservation of a contractor for a date range and an
// optional daily time window. A nil Time means the booking occupies the
// entire day. An overnight Time (end not after start) runs from Start on the
// first day to End on the morning of the last day.
type Booking struct {
	ID              string       `bson:"id" json:"id"`
	ContractorID    string       `bson:"contractor_id" json:"contractorId"`
	ClientID        string       `bson:"client_id" json:"clientId"`
	StartDate       string       `bson:"start_date" json:"startDate"` // "YYYY-MM-DD"
	EndDate         string       `bson:"end_date" json:"endDate"`     // "YYYY-MM-DD", inclusive
	Time            *TimeSlot    `bson:"time,omitempty" json:"time,omitempty"`
	Status          string       `bson:"status" json:"status"`
	Services        []ServiceRef `bson:"services,omitempty" json:"services,omitempty"`
	ServiceType     string       `bson:"service_type,omitempty" json:"serviceType,omitempty"`
	PetName         string       `bson:"pet_name,omitempty" json:"petName,omitempty"`
	DepositAmount   int64        `bson:"deposit_amount,omitempty" json:"depositAmount,omitempty"` // minor units
	Currency        string       `bson:"currency,omitempty" json:"currency,omitempty"`
	PaymentIntentID string       `bson:"payment_intent_id,omitempty" json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time    `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time    `bson:"updated_at" json:"updatedAt"`
}

// BookingInput is the payload for creating a new booking request.
type BookingInput struct {
	ContractorID  string       `json:"contractorId" binding:"required"`
	ClientID      string       `json:"clientId" binding:"required"`
	StartDate     string       `json:"startDate" binding:"required"`
	EndDate       string       `json:"endDate" binding:"required"`
	Time          *TimeSlot    `json:"time,omitempty"`
	Services      []ServiceRef `json:"services,omitempty"`
	ServiceType   string       `json:"serviceType,omitempty"`
	PetName       string       `json:"petName,omitempty"`
	DepositAmount int64        `json:"depositAmount,omitempty"`
	Currency      string       `json:"currency,omitempty"`
}
