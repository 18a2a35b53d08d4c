package bookingRepo

import (
	"context"

	"pawhub/models"
)

// DetectFunc evaluates a set of existing bookings against a proposed window
// and returns the per-day conflicts. Implementations come from the schedule
// engine; the repository only decides where and when it runs.
type DetectFunc func(existing []models.Booking) []models.BookingConflict

// BookingRepository defines the data access methods for booking records.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(bookingID string) (*models.Booking, error)
	// ListForContractorInRange retrieves a contractor's bookings, filtered to
	// the given statuses, whose date range intersects [startDate, endDate].
	ListForContractorInRange(contractorID, startDate, endDate string, statuses []string) ([]models.Booking, error)
	// Create persists a new booking record without any conflict checking.
	Create(booking *models.Booking) error
	// CreateIfNoConflict re-runs conflict detection against the bookings
	// matching statuses and inserts the booking, atomically within a mongo
	// transaction. Returns a *ConflictError when detection reports conflicts.
	CreateIfNoConflict(ctx context.Context, booking *models.Booking, statuses []string, detect DetectFunc) error
	// ApproveIfNoConflict flips a pending booking to approved after re-running
	// conflict detection inside a transaction. The detect callback receives
	// the other bookings overlapping the target's range.
	ApproveIfNoConflict(ctx context.Context, bookingID string, statuses []string, detect DetectFunc) error
	// UpdateStatus sets the booking's status.
	UpdateStatus(bookingID, status string) error
	// UpdateSchedule rewrites a booking's date range and time slot.
	UpdateSchedule(bookingID, startDate, endDate string, slot *models.TimeSlot) error
	// SetPaymentIntent attaches a payment intent id to the booking.
	SetPaymentIntent(bookingID, paymentIntentID string) error
	// EnsureIndexes creates the indexes the query patterns above rely on.
	EnsureIndexes() error
}
