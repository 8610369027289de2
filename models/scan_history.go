package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Scan direction labels recorded on history entries.
const (
	ScanTypeIn  = "IN"
	ScanTypeOut = "OUT"
)

// DefaultVenue is recorded when the operator leaves the venue blank.
const DefaultVenue = "Main Gate"

// ScanHistoryEntry is one append-only audit record of a confirmed scan.
// Attendee name and team are denormalized for display so history listing
// needs no join.
type ScanHistoryEntry struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	AttendeeID   primitive.ObjectID `json:"attendee_id" bson:"attendee_id,omitempty"`
	AttendeeName string             `json:"attendee_name" bson:"attendee_name,omitempty"`
	TeamName     string             `json:"team_name" bson:"team_name,omitempty"`
	ScanType     string             `json:"scan_type" bson:"scan_type,omitempty"`
	Venue        string             `json:"venue" bson:"venue,omitempty"`
	ScannedBy    string             `json:"scanned_by" bson:"scanned_by,omitempty"`
	ScannedAt    time.Time          `json:"scanned_at" bson:"scanned_at,omitempty"`
}

type ScanLookupPayload struct {
	Code string `json:"code" validate:"required"`
}

type ScanConfirmPayload struct {
	Venue string `json:"venue" validate:"omitempty,max=100"`
}
