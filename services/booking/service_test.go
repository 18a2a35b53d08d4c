package booking

import (
	"context"
	"errors"
	"testing"

	bookingRepo "pawhub/database/repository/booking"
	"pawhub/models"
	"pawhub/services/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	bookings map[string]*models.Booking
	existing []models.Booking

	created       *models.Booking
	statusUpdates map[string]string
	rescheduled   bool
	intentSet     string
}

func newFakeRepo(bookings ...*models.Booking) *fakeRepo {
	r := &fakeRepo{bookings: map[string]*models.Booking{}, statusUpdates: map[string]string{}}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	found := *b
	return &found, nil
}

func (r *fakeRepo) ListForContractorInRange(string, string, string, []string) ([]models.Booking, error) {
	return r.existing, nil
}

func (r *fakeRepo) Create(b *models.Booking) error {
	r.created = b
	return nil
}

func (r *fakeRepo) CreateIfNoConflict(_ context.Context, b *models.Booking, _ []string, detect bookingRepo.DetectFunc) error {
	if conflicts := detect(r.existing); len(conflicts) > 0 {
		return &bookingRepo.ConflictError{Conflicts: conflicts}
	}
	r.created = b
	return nil
}

func (r *fakeRepo) ApproveIfNoConflict(_ context.Context, id string, _ []string, detect bookingRepo.DetectFunc) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if conflicts := detect(r.existing); len(conflicts) > 0 {
		return &bookingRepo.ConflictError{Conflicts: conflicts}
	}
	b.Status = models.StatusApproved
	return nil
}

func (r *fakeRepo) UpdateStatus(id, status string) error {
	r.statusUpdates[id] = status
	if b, ok := r.bookings[id]; ok {
		b.Status = status
	}
	return nil
}

func (r *fakeRepo) UpdateSchedule(id, startDate, endDate string, slot *models.TimeSlot) error {
	r.rescheduled = true
	if b, ok := r.bookings[id]; ok {
		b.StartDate, b.EndDate, b.Time = startDate, endDate, slot
	}
	return nil
}

func (r *fakeRepo) SetPaymentIntent(_, intentID string) error {
	r.intentSet = intentID
	return nil
}

func (r *fakeRepo) EnsureIndexes() error { return nil }

type fakeScheduler struct {
	conflicts  []models.BookingConflict
	err        error
	gotExclude string
}

func (s *fakeScheduler) CheckBookingConflicts(_ context.Context, _, _, _ string, _ *models.TimeSlot, excludeBookingID string) ([]models.BookingConflict, error) {
	s.gotExclude = excludeBookingID
	return s.conflicts, s.err
}

func (s *fakeScheduler) GetAvailableTimeSlots(context.Context, string, string, int) ([]models.AvailabilitySlot, error) {
	return nil, nil
}

func (s *fakeScheduler) GetContractorSchedule(context.Context, string, string, string, []string) ([]models.DaySchedule, error) {
	return nil, nil
}

func (s *fakeScheduler) GetUnavailablePeriods(context.Context, string, string, string) ([]models.UnavailablePeriod, error) {
	return nil, nil
}

func (s *fakeScheduler) DeclareUnavailablePeriod(context.Context, *models.UnavailablePeriod) error {
	return nil
}

func (s *fakeScheduler) ClearUnavailablePeriod(context.Context, string) error { return nil }

type fakePayments struct {
	intentID string
	err      error
	charged  *models.Booking
}

func (p *fakePayments) CreateDepositIntent(_ context.Context, b *models.Booking) (string, error) {
	p.charged = b
	return p.intentID, p.err
}

func testInput() models.BookingInput {
	return models.BookingInput{
		ContractorID: "walker-1",
		ClientID:     "client-1",
		StartDate:    "2024-07-04",
		EndDate:      "2024-07-04",
		Time:         &models.TimeSlot{Start: 600, End: 660},
		ServiceType:  "walking",
		PetName:      "Biscuit",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultBookingService{Repo: repo, Scheduler: &fakeScheduler{}, Payments: &fakePayments{}}

	b, err := svc.CreateBooking(context.Background(), testInput())
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, models.StatusPending, b.Status)
	require.NotNil(t, repo.created)
	assert.Equal(t, b.ID, repo.created.ID)
	assert.Empty(t, b.PaymentIntentID)
}

func TestCreateBooking_FailsClosedWhenCheckUnavailable(t *testing.T) {
	repo := newFakeRepo()
	sched := &fakeScheduler{err: &schedule.ScheduleQueryError{Op: "list confirmed bookings", Err: errors.New("down")}}
	svc := &DefaultBookingService{Repo: repo, Scheduler: sched, Payments: &fakePayments{}}

	_, err := svc.CreateBooking(context.Background(), testInput())
	require.Error(t, err)
	var qErr *schedule.ScheduleQueryError
	assert.ErrorAs(t, err, &qErr)
	assert.Nil(t, repo.created)
}

func TestCreateBooking_RejectsAdvisoryConflicts(t *testing.T) {
	repo := newFakeRepo()
	sched := &fakeScheduler{conflicts: []models.BookingConflict{{BookingID: "other", ConflictDate: "2024-07-04"}}}
	svc := &DefaultBookingService{Repo: repo, Scheduler: sched, Payments: &fakePayments{}}

	_, err := svc.CreateBooking(context.Background(), testInput())
	var cErr *bookingRepo.ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Nil(t, repo.created)
}

func TestCreateBooking_LosesTransactionalRace(t *testing.T) {
	// The advisory check saw a clean schedule, but a competing booking
	// landed before the transaction ran.
	repo := newFakeRepo()
	repo.existing = []models.Booking{{
		ID:           "rival",
		ContractorID: "walker-1",
		StartDate:    "2024-07-04",
		EndDate:      "2024-07-04",
		Time:         &models.TimeSlot{Start: 630, End: 690},
		Status:       models.StatusApproved,
	}}
	svc := &DefaultBookingService{Repo: repo, Scheduler: &fakeScheduler{}, Payments: &fakePayments{}}

	_, err := svc.CreateBooking(context.Background(), testInput())
	var cErr *bookingRepo.ConflictError
	require.ErrorAs(t, err, &cErr)
	require.Len(t, cErr.Conflicts, 1)
	assert.Equal(t, "rival", cErr.Conflicts[0].BookingID)
	assert.Nil(t, repo.created)
}

func TestCreateBooking_DepositIntentAttached(t *testing.T) {
	repo := newFakeRepo()
	payments := &fakePayments{intentID: "pi_123"}
	svc := &DefaultBookingService{Repo: repo, Scheduler: &fakeScheduler{}, Payments: payments}

	input := testInput()
	input.DepositAmount = 2500
	input.Currency = "usd"

	b, err := svc.CreateBooking(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "pi_123", b.PaymentIntentID)
	assert.Equal(t, "pi_123", repo.intentSet)
	require.NotNil(t, payments.charged)
	assert.Equal(t, int64(2500), payments.charged.DepositAmount)
}

func TestCreateBooking_PaymentFailureCancelsBooking(t *testing.T) {
	repo := newFakeRepo()
	payments := &fakePayments{err: errors.New("card network unreachable")}
	svc := &DefaultBookingService{Repo: repo, Scheduler: &fakeScheduler{}, Payments: payments}

	input := testInput()
	input.DepositAmount = 2500

	_, err := svc.CreateBooking(context.Background(), input)
	require.Error(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, models.StatusCancelled, repo.statusUpdates[repo.created.ID])
}

func TestApproveBooking(t *testing.T) {
	pending := &models.Booking{ID: "b1", ContractorID: "walker-1", StartDate: "2024-07-04", EndDate: "2024-07-04", Status: models.StatusPending}
	repo := newFakeRepo(pending)
	svc := &DefaultBookingService{Repo: repo, Scheduler: &fakeScheduler{}, Payments: &fakePayments{}}

	require.NoError(t, svc.ApproveBooking(context.Background(), "b1"))
	assert.Equal(t, models.StatusApproved, repo.bookings["b1"].Status)

	err := svc.ApproveBooking(context.Background(), "b1")
	var wErr *WorkflowError
	assert.ErrorAs(t, err, &wErr)

	assert.ErrorIs(t, svc.ApproveBooking(context.Background(), "missing"), bookingRepo.ErrBookingNotFound)
}

func TestCancelBooking(t *testing.T) {
	repo := newFakeRepo(
		&models.Booking{ID: "b1", Status: models.StatusApproved},
		&models.Booking{ID: "b2", Status: models.StatusCancelled},
		&models.Booking{ID: "b3", Status: models.StatusCompleted},
	)
	svc := &DefaultBookingService{Repo: repo, Scheduler: &fakeScheduler{}, Payments: &fakePayments{}}

	require.NoError(t, svc.CancelBooking(context.Background(), "b1"))
	assert.Equal(t, models.StatusCancelled, repo.statusUpdates["b1"])

	// Cancelling twice is a no-op, not an error.
	require.NoError(t, svc.CancelBooking(context.Background(), "b2"))
	assert.NotContains(t, repo.statusUpdates, "b2")

	var wErr *WorkflowError
	assert.ErrorAs(t, svc.CancelBooking(context.Background(), "b3"), &wErr)
}

func TestRescheduleBooking(t *testing.T) {
	repo := newFakeRepo(&models.Booking{
		ID: "b1", ContractorID: "walker-1",
		StartDate: "2024-07-04", EndDate: "2024-07-04",
		Time: &models.TimeSlot{Start: 600, End: 660}, Status: models.StatusApproved,
	})
	sched := &fakeScheduler{}
	svc := &DefaultBookingService{Repo: repo, Scheduler: sched, Payments: &fakePayments{}}

	newSlot := &models.TimeSlot{Start: 840, End: 900}
	updated, err := svc.RescheduleBooking(context.Background(), "b1", "2024-07-05", "2024-07-05", newSlot)
	require.NoError(t, err)
	assert.Equal(t, "b1", sched.gotExclude, "reschedule must exclude its own booking from conflict checks")
	assert.True(t, repo.rescheduled)
	assert.Equal(t, "2024-07-05", updated.StartDate)
	assert.Equal(t, newSlot, updated.Time)
}

func TestRescheduleBooking_RejectsTerminalStatuses(t *testing.T) {
	repo := newFakeRepo(&models.Booking{ID: "b1", Status: models.StatusCancelled})
	svc := &DefaultBookingService{Repo: repo, Scheduler: &fakeScheduler{}, Payments: &fakePayments{}}

	_, err := svc.RescheduleBooking(context.Background(), "b1", "2024-07-05", "2024-07-05", nil)
	var wErr *WorkflowError
	assert.ErrorAs(t, err, &wErr)
}
