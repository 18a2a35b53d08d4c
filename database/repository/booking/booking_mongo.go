package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pawhub/database"
	"pawhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("pawhub")
	return &MongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}

// GetByID retrieves a booking document by ID.
func (repo *MongoBookingRepo) GetByID(bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	filter := bson.M{"id": bookingID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("error fetching booking with id %s: %w", bookingID, err)
	}
	normalizeBooking(&booking)
	return &booking, nil
}

// Create persists a new booking record.
func (repo *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// UpdateStatus sets the booking's status field.
func (repo *MongoBookingRepo) UpdateStatus(bookingID, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bookingID}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating booking status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// UpdateSchedule rewrites a booking's date range and time slot.
func (repo *MongoBookingRepo) UpdateSchedule(bookingID, startDate, endDate string, slot *models.TimeSlot) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	set := bson.M{
		"start_date": startDate,
		"end_date":   endDate,
		"updated_at": time.Now(),
	}
	update := bson.M{"$set": set}
	if slot != nil {
		set["time"] = slot
	} else {
		update["$unset"] = bson.M{"time": ""}
	}

	filter := bson.M{"id": bookingID}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating booking schedule: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// SetPaymentIntent attaches a payment intent id to the booking.
func (repo *MongoBookingRepo) SetPaymentIntent(bookingID, paymentIntentID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bookingID}
	update := bson.M{"$set": bson.M{"payment_intent_id": paymentIntentID, "updated_at": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error attaching payment intent: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// normalizeBooking canonicalizes a decoded booking: date-time strings are
// truncated to their date part, and legacy 00:00-24:00 full-day markers are
// rewritten to the canonical 00:00-23:59 sentinel, so the engine only ever
// sees one form of each.
func normalizeBooking(b *models.Booking) {
	if len(b.StartDate) > 10 {
		b.StartDate = b.StartDate[:10]
	}
	if len(b.EndDate) > 10 {
		b.EndDate = b.EndDate[:10]
	}
	if b.Time != nil && b.Time.Start == models.FullDayStart && b.Time.End >= models.FullDayEnd {
		b.Time.End = models.FullDayEnd
	}
}
