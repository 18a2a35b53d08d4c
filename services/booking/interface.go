package booking

import (
	"context"

	"pawhub/models"
)

// BookingService drives the booking lifecycle: request, approval,
// cancellation and rescheduling. Every mutation re-validates conflicts
// transactionally; the advisory pre-check only exists to fail fast.
type BookingService interface {
	CreateBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	ApproveBooking(ctx context.Context, bookingID string) error
	CancelBooking(ctx context.Context, bookingID string) error
	RescheduleBooking(ctx context.Context, bookingID, startDate, endDate string, slot *models.TimeSlot) (*models.Booking, error)
}
