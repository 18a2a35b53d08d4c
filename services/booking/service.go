package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "pawhub/database/repository/booking"
	"pawhub/models"
	"pawhub/services/schedule"
	"pawhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Scheduler schedule.ScheduleService
	Payments  PaymentProcessor
}

// CreateBooking validates the request, runs the advisory conflict check,
// then performs the authoritative transactional check-and-insert. The
// advisory check failing closed is deliberate: a booking is never created
// when conflicts could not be determined.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	conflicts, err := s.Scheduler.CheckBookingConflicts(ctx, input.ContractorID, input.StartDate, input.EndDate, input.Time, "")
	if err != nil {
		return nil, fmt.Errorf("could not validate booking request: %w", err)
	}
	if len(conflicts) > 0 {
		return nil, &bookingRepo.ConflictError{Conflicts: conflicts}
	}

	now := time.Now()
	b := &models.Booking{
		ID:            uuid.New().String(),
		ContractorID:  input.ContractorID,
		ClientID:      input.ClientID,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Time:          input.Time,
		Status:        models.StatusPending,
		Services:      input.Services,
		ServiceType:   input.ServiceType,
		PetName:       input.PetName,
		DepositAmount: input.DepositAmount,
		Currency:      input.Currency,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	rng := schedule.DateRange{StartDate: b.StartDate, EndDate: b.EndDate}
	detect := func(existing []models.Booking) []models.BookingConflict {
		return schedule.FindConflicts(existing, rng, b.Time, "")
	}
	if err := s.Repo.CreateIfNoConflict(ctx, b, models.ConfirmedStatuses, detect); err != nil {
		return nil, err
	}

	if b.DepositAmount > 0 {
		intentID, payErr := s.Payments.CreateDepositIntent(ctx, b)
		if payErr != nil {
			// No deposit intent means no hold on the contractor's time.
			logger.Error("deposit intent failed, cancelling booking",
				zap.String("bookingID", b.ID), zap.Error(payErr))
			if cancelErr := s.Repo.UpdateStatus(b.ID, models.StatusCancelled); cancelErr != nil {
				logger.Error("failed to cancel booking after payment failure",
					zap.String("bookingID", b.ID), zap.Error(cancelErr))
			}
			return nil, fmt.Errorf("deposit payment setup failed: %w", payErr)
		}
		b.PaymentIntentID = intentID
		if err := s.Repo.SetPaymentIntent(b.ID, intentID); err != nil {
			logger.Error("failed to attach payment intent to booking",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	logger.Info("booking request created",
		zap.String("bookingID", b.ID),
		zap.String("contractorID", b.ContractorID),
		zap.String("startDate", b.StartDate),
		zap.String("endDate", b.EndDate))
	return b, nil
}

// ApproveBooking confirms a pending booking. Conflict detection runs again
// inside the transaction: two pending requests for the same window can both
// exist, but only one of them can be approved.
func (s *DefaultBookingService) ApproveBooking(ctx context.Context, bookingID string) error {
	target, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if target.Status != models.StatusPending {
		return NewWorkflowError("invalidStatus", fmt.Sprintf("cannot approve a %s booking", target.Status))
	}

	rng := schedule.DateRange{StartDate: target.StartDate, EndDate: target.EndDate}
	detect := func(existing []models.Booking) []models.BookingConflict {
		return schedule.FindConflicts(existing, rng, target.Time, target.ID)
	}
	if err := s.Repo.ApproveIfNoConflict(ctx, bookingID, models.ConfirmedStatuses, detect); err != nil {
		return err
	}

	utils.GetLogger().Info("booking approved", zap.String("bookingID", bookingID))
	return nil
}

// CancelBooking cancels a booking, releasing its hold on the schedule.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string) error {
	target, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if target.Status == models.StatusCancelled {
		return nil
	}
	if target.Status == models.StatusCompleted {
		return NewWorkflowError("invalidStatus", "cannot cancel a completed booking")
	}
	if err := s.Repo.UpdateStatus(bookingID, models.StatusCancelled); err != nil {
		return err
	}
	utils.GetLogger().Info("booking cancelled", zap.String("bookingID", bookingID))
	return nil
}

// RescheduleBooking moves a booking to a new window after re-validating it
// against every other booking of the contractor.
func (s *DefaultBookingService) RescheduleBooking(ctx context.Context, bookingID, startDate, endDate string, slot *models.TimeSlot) (*models.Booking, error) {
	target, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if target.Status == models.StatusCancelled || target.Status == models.StatusCompleted {
		return nil, NewWorkflowError("invalidStatus", fmt.Sprintf("cannot reschedule a %s booking", target.Status))
	}

	conflicts, err := s.Scheduler.CheckBookingConflicts(ctx, target.ContractorID, startDate, endDate, slot, bookingID)
	if err != nil {
		return nil, fmt.Errorf("could not validate reschedule request: %w", err)
	}
	if len(conflicts) > 0 {
		return nil, &bookingRepo.ConflictError{Conflicts: conflicts}
	}

	if err := s.Repo.UpdateSchedule(bookingID, startDate, endDate, slot); err != nil {
		return nil, err
	}

	target.StartDate = startDate
	target.EndDate = endDate
	target.Time = slot
	utils.GetLogger().Info("booking rescheduled",
		zap.String("bookingID", bookingID),
		zap.String("startDate", startDate),
		zap.String("endDate", endDate))
	return target, nil
}
