package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"event-checkin-backend/config"
	"event-checkin-backend/models"
)

type ScanHistoryRepository interface {
	CreateEntry(ctx context.Context, entry *models.ScanHistoryEntry) (*mongo.InsertOneResult, error)
	GetAllEntries(ctx context.Context, filter bson.M, page, limit int64) ([]models.ScanHistoryEntry, int64, error)
	FindEntriesByAttendeeID(ctx context.Context, attendeeID primitive.ObjectID) ([]models.ScanHistoryEntry, error)
}

type scanHistoryRepository struct {
	collection *mongo.Collection
}

func NewScanHistoryRepository() ScanHistoryRepository {
	return &scanHistoryRepository{
		collection: config.GetCollection(config.ScanHistoryCollection),
	}
}

func (r *scanHistoryRepository) CreateEntry(ctx context.Context, entry *models.ScanHistoryEntry) (*mongo.InsertOneResult, error) {
	res, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create scan history entry: %w", err)
	}
	return res, nil
}

func (r *scanHistoryRepository) GetAllEntries(ctx context.Context, filter bson.M, page, limit int64) ([]models.ScanHistoryEntry, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count scan history entries: %w", err)
	}

	findOptions := options.Find()
	findOptions.SetSkip((page - 1) * limit)
	findOptions.SetLimit(limit)
	findOptions.SetSort(bson.D{{Key: "scanned_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list scan history: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.ScanHistoryEntry
	if err = cursor.All(ctx, &results); err != nil {
		return nil, 0, fmt.Errorf("failed to decode scan history: %w", err)
	}

	if len(results) == 0 {
		return []models.ScanHistoryEntry{}, total, nil
	}
	return results, total, nil
}

func (r *scanHistoryRepository) FindEntriesByAttendeeID(ctx context.Context, attendeeID primitive.ObjectID) ([]models.ScanHistoryEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "scanned_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"attendee_id": attendeeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find scan history for attendee: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.ScanHistoryEntry
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode scan history for attendee: %w", err)
	}

	if len(results) == 0 {
		return []models.ScanHistoryEntry{}, nil
	}
	return results, nil
}
