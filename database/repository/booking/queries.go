package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"pawhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ListForContractorInRange retrieves a contractor's bookings in the given
// statuses whose date range intersects [startDate, endDate]. Zero-padded ISO
// date strings compare correctly as strings, so the range test runs in the
// query itself.
func (repo *MongoBookingRepo) ListForContractorInRange(contractorID, startDate, endDate string, statuses []string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return repo.listInRange(ctx, contractorID, startDate, endDate, statuses)
}

// listInRange is the shared query used both by the plain listing and by the
// transactional write paths, which pass a session context instead.
func (repo *MongoBookingRepo) listInRange(ctx context.Context, contractorID, startDate, endDate string, statuses []string) ([]models.Booking, error) {
	filter := bson.M{
		"contractor_id": contractorID,
		"status":        bson.M{"$in": statuses},
		"start_date":    bson.M{"$lte": endDate},
		"end_date":      bson.M{"$gte": startDate},
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for contractor %s: %w", contractorID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		normalizeBooking(&b)
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}
	return bookings, nil
}
