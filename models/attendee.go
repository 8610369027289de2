package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendee status values. An empty status means the attendee has never
// been scanned and is treated the same as checked_out ("outside").
const (
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
)

// Attendee is one registered ticket holder. The hex of ID is the entire
// QR payload of the ticket.
type Attendee struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name,omitempty"`
	TeamName      string             `json:"team_name" bson:"team_name,omitempty"`
	Phone         string             `json:"phone" bson:"phone,omitempty"`
	Email         string             `json:"email" bson:"email,omitempty"`
	College       string             `json:"college" bson:"college,omitempty"`
	EventName     string             `json:"event_name" bson:"event_name,omitempty"`
	PhotoURL      string             `json:"photo_url" bson:"photo_url,omitempty"`
	Status        string             `json:"status" bson:"status,omitempty"`
	LastScannedBy string             `json:"last_scanned_by" bson:"last_scanned_by,omitempty"`
	LastScannedAt time.Time          `json:"last_scanned_at" bson:"last_scanned_at,omitempty"`
	// Version is bumped on every status flip so two operators scanning
	// the same ticket at once cannot both win the update.
	Version   int64     `json:"version" bson:"version"`
	CreatedAt time.Time `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at,omitempty"`
}

// IsInside reports whether the attendee is currently checked in. Unset
// and checked_out both count as outside.
func (a *Attendee) IsInside() bool {
	return a.Status == StatusCheckedIn
}

type AttendeeRegisterPayload struct {
	Name      string `json:"name" form:"name" validate:"required,min=2,max=100"`
	TeamName  string `json:"team_name" form:"team_name" validate:"required,min=2,max=100"`
	Phone     string `json:"phone" form:"phone" validate:"required,min=7,max=20"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	College   string `json:"college" form:"college" validate:"required,min=2,max=150"`
	EventName string `json:"event_name" form:"event_name" validate:"omitempty,max=150"`
}

// StatusUpdate is the write the scan engine issues when a verification
// is confirmed.
type StatusUpdate struct {
	NewStatus string
	ScannedBy string
	ScannedAt time.Time
	// FromVersion must match the stored document for the update to apply.
	FromVersion int64
}
