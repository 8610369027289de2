// Package scanner holds the check-in/check-out state machine behind the
// staff scanner screen. Each operator gets one in-memory session: a scan
// captures an attendee snapshot and parks it as "pending verification",
// and only an explicit confirm or cancel releases it. Decode events that
// arrive while a verification is pending are rejected, repeats of the
// same code are swallowed as camera-frame noise.
package scanner

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"event-checkin-backend/models"
	"event-checkin-backend/repository"
)

var (
	// ErrDuplicateScan means the pending code was decoded again. Callers
	// should ignore the event entirely.
	ErrDuplicateScan = errors.New("scan already pending for this code")
	// ErrVerificationPending means a different code arrived while a
	// verification is still open.
	ErrVerificationPending = errors.New("another verification is pending, confirm or cancel it first")
	// ErrTicketNotFound is distinct from store errors: the code was read
	// fine, there is just no such attendee.
	ErrTicketNotFound = errors.New("ticket not found")
	// ErrNoPendingScan means confirm/cancel arrived with nothing pending.
	ErrNoPendingScan = errors.New("no scan is pending verification")
	// ErrScanConflict means another operator flipped the attendee between
	// our lookup and our confirm. The operator has to rescan.
	ErrScanConflict = errors.New("attendee was updated by another scan, please rescan")
)

// Session is one operator's pending verification.
type Session struct {
	PendingCode string
	Attendee    models.Attendee
	StartedAt   time.Time
}

// Result describes one confirmed toggle.
type Result struct {
	Attendee  models.Attendee
	ScanType  string
	NewStatus string
	Venue     string
	ScannedAt time.Time
}

// Engine owns the per-operator sessions and performs the remote writes
// for confirmed scans.
type Engine struct {
	mu       sync.Mutex
	sessions map[string]*Session

	attendees repository.AttendeeRepository
	history   repository.ScanHistoryRepository
	retrier   *HistoryRetrier
}

func NewEngine(attendees repository.AttendeeRepository, history repository.ScanHistoryRepository, retrier *HistoryRetrier) *Engine {
	return &Engine{
		sessions:  make(map[string]*Session),
		attendees: attendees,
		history:   history,
		retrier:   retrier,
	}
}

// NextTransition maps the status captured at lookup time to the status a
// confirmed scan writes. Unset status counts as outside, so the first
// scan of a fresh ticket is always a check-in.
func NextTransition(current string) (newStatus, scanType string) {
	if current == models.StatusCheckedIn {
		return models.StatusCheckedOut, models.ScanTypeOut
	}
	return models.StatusCheckedIn, models.ScanTypeIn
}

// Lookup resolves a decoded QR payload to an attendee and opens a
// pending verification for the operator.
func (e *Engine) Lookup(ctx context.Context, operator, code string) (*models.Attendee, error) {
	e.mu.Lock()
	if s, ok := e.sessions[operator]; ok {
		e.mu.Unlock()
		if s.PendingCode == code {
			return nil, ErrDuplicateScan
		}
		return nil, ErrVerificationPending
	}
	e.mu.Unlock()

	id, err := primitive.ObjectIDFromHex(code)
	if err != nil {
		// A malformed payload can never match a ticket.
		return nil, ErrTicketNotFound
	}

	attendee, err := e.attendees.FindAttendeeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if attendee == nil {
		return nil, ErrTicketNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	// The same decode may have raced us here while the store call was in
	// flight, keep whichever verification landed first.
	if s, ok := e.sessions[operator]; ok {
		if s.PendingCode == code {
			return nil, ErrDuplicateScan
		}
		return nil, ErrVerificationPending
	}
	e.sessions[operator] = &Session{
		PendingCode: code,
		Attendee:    *attendee,
		StartedAt:   time.Now(),
	}

	return attendee, nil
}

// Confirm toggles the pending attendee's status and appends the history
// entry. The session is cleared whatever the outcome: a failed write
// means the operator rescans, it never leaves a stale pending state.
func (e *Engine) Confirm(ctx context.Context, operator, venue string) (*Result, error) {
	e.mu.Lock()
	s, ok := e.sessions[operator]
	if !ok {
		e.mu.Unlock()
		return nil, ErrNoPendingScan
	}
	snapshot := *s
	delete(e.sessions, operator)
	e.mu.Unlock()

	newStatus, scanType := NextTransition(snapshot.Attendee.Status)

	if strings.TrimSpace(venue) == "" {
		venue = models.DefaultVenue
	}

	now := time.Now().UTC()
	matched, err := e.attendees.UpdateAttendeeStatus(ctx, snapshot.Attendee.ID, &models.StatusUpdate{
		NewStatus:   newStatus,
		ScannedBy:   operator,
		ScannedAt:   now,
		FromVersion: snapshot.Attendee.Version,
	})
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrScanConflict
	}

	entry := &models.ScanHistoryEntry{
		ID:           primitive.NewObjectID(),
		AttendeeID:   snapshot.Attendee.ID,
		AttendeeName: snapshot.Attendee.Name,
		TeamName:     snapshot.Attendee.TeamName,
		ScanType:     scanType,
		Venue:        venue,
		ScannedBy:    operator,
		ScannedAt:    now,
	}
	if _, err := e.history.CreateEntry(ctx, entry); err != nil {
		// The toggle already landed, so the audit record must not be
		// dropped on the floor. Hand it to the retrier and report
		// success to the operator.
		e.retrier.Enqueue(entry)
	}

	return &Result{
		Attendee:  snapshot.Attendee,
		ScanType:  scanType,
		NewStatus: newStatus,
		Venue:     venue,
		ScannedAt: now,
	}, nil
}

// Cancel drops the operator's pending verification without touching the
// store.
func (e *Engine) Cancel(operator string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.sessions[operator]; !ok {
		return ErrNoPendingScan
	}
	delete(e.sessions, operator)
	return nil
}

// Pending returns the operator's open verification, or nil.
func (e *Engine) Pending(operator string) *Session {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[operator]
	if !ok {
		return nil
	}
	snapshot := *s
	return &snapshot
}
