package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pawhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfNoConflict re-checks conflicts and inserts the booking inside one
// mongo transaction. The advisory pre-check in the service layer can race
// with a concurrent request for the same contractor and window; this is the
// authoritative check that makes one of the two lose.
func (repo *MongoBookingRepo) CreateIfNoConflict(ctx context.Context, booking *models.Booking, statuses []string, detect DetectFunc) error {
	txnFn := func(sc mongo.SessionContext) error {
		existing, err := repo.listInRange(sc, booking.ContractorID, booking.StartDate, booking.EndDate, statuses)
		if err != nil {
			return err
		}
		if conflicts := detect(existing); len(conflicts) > 0 {
			return &ConflictError{Conflicts: conflicts}
		}
		if _, err := repo.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}
	return repo.runInTransaction(ctx, txnFn)
}

// ApproveIfNoConflict flips a pending booking to approved after re-running
// conflict detection against the other bookings overlapping its range.
func (repo *MongoBookingRepo) ApproveIfNoConflict(ctx context.Context, bookingID string, statuses []string, detect DetectFunc) error {
	txnFn := func(sc mongo.SessionContext) error {
		var target models.Booking
		if err := repo.coll.FindOne(sc, bson.M{"id": bookingID}).Decode(&target); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("fetch booking failed: %w", err)
		}

		existing, err := repo.listInRange(sc, target.ContractorID, target.StartDate, target.EndDate, statuses)
		if err != nil {
			return err
		}
		if conflicts := detect(existing); len(conflicts) > 0 {
			return &ConflictError{Conflicts: conflicts}
		}

		update := bson.M{"$set": bson.M{"status": models.StatusApproved, "updated_at": time.Now()}}
		res, err := repo.coll.UpdateOne(sc, bson.M{"id": bookingID}, update)
		if err != nil {
			return fmt.Errorf("approve booking failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrBookingNotFound
		}
		return nil
	}
	return repo.runInTransaction(ctx, txnFn)
}

func (repo *MongoBookingRepo) runInTransaction(ctx context.Context, txnFn func(mongo.SessionContext) error) error {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var txnErr error
	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			txnErr = err
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		// Surface conflict rejections as-is so callers can report them.
		if txnErr != nil {
			return txnErr
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}
	return nil
}
