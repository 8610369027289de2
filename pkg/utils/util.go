package util

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Venue scans happen in IST regardless of where the server runs, so the
// display string is always derived in Asia/Kolkata. Storage keeps the
// canonical UTC time.Time, this is render-time only.
var displayLocation *time.Location

func init() {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// time/tzdata is compiled in from main, so this only happens on
		// a broken build. Fall back to UTC rather than crash.
		loc = time.UTC
	}
	displayLocation = loc
}

// DisplayTimestamp formats t the way the scan screens show it,
// e.g. "2 Dec, 06:15:04 pm". Zero times render as an empty string.
func DisplayTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(displayLocation).Format("2 Jan, 03:04:05 pm")
}

// PhotoBlobName builds a unique blob name from the submission time and
// the attendee name with whitespace stripped. The uuid suffix keeps two
// same-named attendees registering in the same second from colliding.
func PhotoBlobName(attendeeName, originalFilename string, at time.Time) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	if ext == "" {
		ext = ".jpg"
	}
	compact := strings.Join(strings.Fields(attendeeName), "")
	if compact == "" {
		compact = "attendee"
	}
	return fmt.Sprintf("%d_%s_%s%s", at.Unix(), compact, uuid.New().String()[:8], ext)
}
