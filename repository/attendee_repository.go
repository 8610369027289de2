package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"event-checkin-backend/config"
	"event-checkin-backend/models"
)

type AttendeeRepository interface {
	CreateAttendee(ctx context.Context, attendee *models.Attendee) (*mongo.InsertOneResult, error)
	FindAttendeeByID(ctx context.Context, id primitive.ObjectID) (*models.Attendee, error)
	// UpdateAttendeeStatus applies a confirmed scan. The update only
	// matches when the stored version equals upd.FromVersion, so a
	// concurrent scan that won the race leaves matched == 0.
	UpdateAttendeeStatus(ctx context.Context, id primitive.ObjectID, upd *models.StatusUpdate) (int64, error)
	GetAllAttendees(ctx context.Context, filter bson.M, page, limit int64) ([]models.Attendee, int64, error)
}

type attendeeRepository struct {
	collection *mongo.Collection
}

func NewAttendeeRepository() AttendeeRepository {
	return &attendeeRepository{
		collection: config.GetCollection(config.AttendeeCollection),
	}
}

func (r *attendeeRepository) CreateAttendee(ctx context.Context, attendee *models.Attendee) (*mongo.InsertOneResult, error) {
	res, err := r.collection.InsertOne(ctx, attendee)
	if err != nil {
		return nil, fmt.Errorf("failed to create attendee: %w", err)
	}
	return res, nil
}

func (r *attendeeRepository) FindAttendeeByID(ctx context.Context, id primitive.ObjectID) (*models.Attendee, error) {
	var attendee models.Attendee
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&attendee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attendee by id: %w", err)
	}
	return &attendee, nil
}

func (r *attendeeRepository) UpdateAttendeeStatus(ctx context.Context, id primitive.ObjectID, upd *models.StatusUpdate) (int64, error) {
	filter := bson.M{"_id": id, "version": upd.FromVersion}
	update := bson.M{
		"$set": bson.M{
			"status":          upd.NewStatus,
			"last_scanned_by": upd.ScannedBy,
			"last_scanned_at": upd.ScannedAt,
			"updated_at":      time.Now(),
		},
		"$inc": bson.M{"version": 1},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to update attendee status: %w", err)
	}
	return res.MatchedCount, nil
}

func (r *attendeeRepository) GetAllAttendees(ctx context.Context, filter bson.M, page, limit int64) ([]models.Attendee, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count attendees: %w", err)
	}

	findOptions := options.Find()
	findOptions.SetSkip((page - 1) * limit)
	findOptions.SetLimit(limit)
	findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendees: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Attendee
	if err = cursor.All(ctx, &results); err != nil {
		return nil, 0, fmt.Errorf("failed to decode attendee list: %w", err)
	}

	if len(results) == 0 {
		return []models.Attendee{}, total, nil
	}
	return results, total, nil
}
