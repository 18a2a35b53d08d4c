package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pawhub/database"
	"pawhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrPeriodNotFound is returned when no unavailable period matches the id.
var ErrPeriodNotFound = errors.New("unavailable period not found")

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new instance of MongoAvailabilityRepo.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("pawhub")
	return &MongoAvailabilityRepo{
		coll: db.Collection("unavailable_periods"),
	}
}

// ListUnavailable retrieves declared unavailable periods intersecting the range.
func (repo *MongoAvailabilityRepo) ListUnavailable(contractorID, startDate, endDate string) ([]models.UnavailablePeriod, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"contractor_id": contractorID,
		"start_date":    bson.M{"$lte": endDate},
		"end_date":      bson.M{"$gte": startDate},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching unavailable periods for contractor %s: %w", contractorID, err)
	}
	defer cursor.Close(ctx)

	var periods []models.UnavailablePeriod
	for cursor.Next(ctx) {
		var p models.UnavailablePeriod
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("error decoding unavailable period: %w", err)
		}
		periods = append(periods, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unavailable periods: %w", err)
	}
	return periods, nil
}

// Declare persists a new unavailable period.
func (repo *MongoAvailabilityRepo) Declare(period *models.UnavailablePeriod) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, period); err != nil {
		return fmt.Errorf("error declaring unavailable period: %w", err)
	}
	return nil
}

// Clear removes a declared unavailable period.
func (repo *MongoAvailabilityRepo) Clear(periodID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": periodID})
	if err != nil {
		return fmt.Errorf("error clearing unavailable period: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrPeriodNotFound
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the unavailable_periods collection.
func (repo *MongoAvailabilityRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{
				{Key: "contractor_id", Value: 1},
				{Key: "start_date", Value: 1},
				{Key: "end_date", Value: 1},
			},
			Options: options.Index().SetName("contractor_dates_idx"),
		},
	}

	_, err := repo.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create availability indexes: %w", err)
	}
	return nil
}
