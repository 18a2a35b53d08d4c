package bookingRepo

import (
	"errors"
	"fmt"

	"pawhub/models"
)

// ErrBookingNotFound is returned when no booking matches the given id.
var ErrBookingNotFound = errors.New("booking not found")

// ConflictError is returned by the transactional write paths when conflict
// detection rejects the booking inside the transaction.
type ConflictError struct {
	Conflicts []models.BookingConflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("booking conflicts on %d day(s) with existing bookings", len(e.Conflicts))
}
