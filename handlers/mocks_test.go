package handlers

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"event-checkin-backend/models"
)

// In-memory repositories for handler tests, no Mongo required.

type stubAttendeeRepo struct {
	mu        sync.Mutex
	attendees map[primitive.ObjectID]*models.Attendee
	findErr   error
}

func newStubAttendeeRepo(attendees ...*models.Attendee) *stubAttendeeRepo {
	m := make(map[primitive.ObjectID]*models.Attendee)
	for _, a := range attendees {
		m[a.ID] = a
	}
	return &stubAttendeeRepo{attendees: m}
}

func (r *stubAttendeeRepo) CreateAttendee(ctx context.Context, attendee *models.Attendee) (*mongo.InsertOneResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attendees[attendee.ID] = attendee
	return &mongo.InsertOneResult{InsertedID: attendee.ID}, nil
}

func (r *stubAttendeeRepo) FindAttendeeByID(ctx context.Context, id primitive.ObjectID) (*models.Attendee, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.attendees[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *stubAttendeeRepo) UpdateAttendeeStatus(ctx context.Context, id primitive.ObjectID, upd *models.StatusUpdate) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.attendees[id]
	if !ok || a.Version != upd.FromVersion {
		return 0, nil
	}
	a.Status = upd.NewStatus
	a.LastScannedBy = upd.ScannedBy
	a.LastScannedAt = upd.ScannedAt
	a.Version++
	return 1, nil
}

func (r *stubAttendeeRepo) GetAllAttendees(ctx context.Context, filter bson.M, page, limit int64) ([]models.Attendee, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Attendee, 0, len(r.attendees))
	for _, a := range r.attendees {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

type stubHistoryRepo struct {
	mu      sync.Mutex
	entries []*models.ScanHistoryEntry
}

func (r *stubHistoryRepo) CreateEntry(ctx context.Context, entry *models.ScanHistoryEntry) (*mongo.InsertOneResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return &mongo.InsertOneResult{InsertedID: entry.ID}, nil
}

func (r *stubHistoryRepo) GetAllEntries(ctx context.Context, filter bson.M, page, limit int64) ([]models.ScanHistoryEntry, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.ScanHistoryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (r *stubHistoryRepo) FindEntriesByAttendeeID(ctx context.Context, attendeeID primitive.ObjectID) ([]models.ScanHistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ScanHistoryEntry
	for _, e := range r.entries {
		if e.AttendeeID == attendeeID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubHistoryRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
